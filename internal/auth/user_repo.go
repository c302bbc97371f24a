package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/apperr"
	"storefront/internal/domain/user"
)

var ErrUserExists = apperr.Conflict("User already exists")

// UserRepo is the process-local credential store. Emails are unique and
// compared exactly as stored.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]user.User
	byEmail map[string]string
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepo) Create(name, email, passwordHash string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[email]; taken {
		return user.User{}, ErrUserExists
	}
	u := user.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	return u, nil
}

func (r *UserRepo) ByEmail(email string) (user.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return user.User{}, false
	}
	return r.byID[id], true
}

func (r *UserRepo) ByID(id string) (user.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	return u, ok
}
