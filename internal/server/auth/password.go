// Package auth implements the credential primitives of the service:
// one-way password hashing and signed session tokens.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash from the plaintext password.
// A fresh salt is generated on every call, so hashing the same password
// twice yields different values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// hash. Comparison inside bcrypt is constant-time. A malformed stored hash
// (corrupt record) yields false, never an escaping error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
