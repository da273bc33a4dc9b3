package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/dvargas92/fotoapp/internal/common"
	"github.com/dvargas92/fotoapp/internal/server/auth"
)

// TokenIssuer creates a signed session token for an authenticated identity.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}

// RegisterInput is the registration request payload. All fields are required.
type RegisterInput struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

// Service implements registration and login on top of the credential store.
type Service struct {
	repo   Repository
	tokens TokenIssuer
}

func NewService(repo Repository, tokens TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register validates the input and creates a new user record.
//
// Checks run in a fixed order: required fields and email syntax, then
// password confirmation, then duplicate email. The store is written exactly
// once on success and never on failure; a concurrent registration racing
// past the duplicate pre-check is still stopped by the store's uniqueness
// constraint.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	if email == "" || username == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, common.ErrorValidation
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, common.ErrorValidation
	}

	if in.Password != in.ConfirmPassword {
		return nil, common.ErrorPasswordMismatch
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking existing email: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a session token.
//
// An unknown email fails with ErrorUserNotFound; a known email with a wrong
// password fails with ErrorInvalidCredentials. The two cases surface as
// different messages in the API and must stay distinct.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUserNotFound
		}
		return "", nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, common.ErrorInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("error issuing token: %w", err)
	}

	return token, user, nil
}
