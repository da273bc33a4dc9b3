// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorValidation = errors.New("validation error")

	// Registration errors.
	ErrorPasswordMismatch = errors.New("passwords do not match")
	ErrorEmailTaken       = errors.New("email already registered")

	// Login errors. Not-found and bad-password are deliberately distinct:
	// the API reports them with different messages.
	ErrorUserNotFound       = errors.New("user not found")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Token lifecycle errors.
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
)
