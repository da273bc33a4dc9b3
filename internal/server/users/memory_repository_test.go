package users

import (
	"context"
	"errors"
	"testing"

	"github.com/dvargas92/fotoapp/internal/common"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &User{ID: "u-1", Email: "UserOne@UserOne.com", Username: "userOne", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Email != "userone@userone.com" {
		t.Fatalf("email not lowercased: %q", created.Email)
	}

	got, err := repo.GetByEmail(ctx, "USERONE@userone.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &User{ID: "u-1", Email: "a@b.com", Username: "a", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	_, err := repo.Create(ctx, &User{ID: "u-2", Email: "A@B.com", Username: "a2", PasswordHash: "h"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
	if repo.Count() != 1 {
		t.Fatalf("duplicate create must not add a record, have %d", repo.Count())
	}
}

func TestMemoryRepository_DeleteAllExcept(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, u := range []*User{
		{ID: "u-1", Email: "userone@userone.com", Username: "userOne", PasswordHash: "h"},
		{ID: "u-2", Email: "usertwo@usertwo.com", Username: "userTwo", PasswordHash: "h"},
		{ID: "u-3", Email: "userthree@userthree.com", Username: "userThree", PasswordHash: "h"},
	} {
		if _, err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	if err := repo.DeleteAllExcept(ctx, "UserOne@userone.com"); err != nil {
		t.Fatalf("DeleteAllExcept error: %v", err)
	}

	if repo.Count() != 1 {
		t.Fatalf("expected one surviving record, have %d", repo.Count())
	}
	if _, err := repo.GetByEmail(ctx, "userone@userone.com"); err != nil {
		t.Fatalf("protected record must survive: %v", err)
	}
}
