package users

import (
	"context"
)

// Repository is the credential store. Implementations must treat email
// case-insensitively and enforce uniqueness on the normalized email; a
// conflicting Create returns common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// DeleteAllExcept bulk-removes every record whose email does not match
	// protectedEmail. Used by test/setup tooling only, never by request paths.
	DeleteAllExcept(ctx context.Context, protectedEmail string) error
}
