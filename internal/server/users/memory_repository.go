package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dvargas92/fotoapp/internal/common"
)

// MemoryRepository is a mutex-guarded in-memory credential store with the
// same uniqueness semantics as the Postgres implementation. It backs the
// HTTP handler tests and serves as a throwaway dev backend.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by lowercased email
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	key := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[key]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.Email = key
	stored.CreatedAt = time.Now()
	r.users[key] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *user
	return &out, nil
}

func (r *MemoryRepository) DeleteAllExcept(_ context.Context, protectedEmail string) error {
	key := strings.ToLower(protectedEmail)

	r.mu.Lock()
	defer r.mu.Unlock()

	for email := range r.users {
		if email != key {
			delete(r.users, email)
		}
	}

	return nil
}

// Count reports the number of stored records. Test helper.
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
