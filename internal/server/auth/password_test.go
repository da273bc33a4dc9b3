package auth

import "testing"

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !CheckPassword("hunter2", h1) || !CheckPassword("hunter2", h2) {
		t.Fatalf("CheckPassword must accept both hashes")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if CheckPassword("battery staple", h) {
		t.Fatalf("CheckPassword accepted a wrong password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"", "not-a-bcrypt-hash", "$2a$xx$corrupt"} {
		if CheckPassword("anything", h) {
			t.Fatalf("CheckPassword(%q) accepted a malformed hash", h)
		}
	}
}
