package repositories

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"simple-todo-api/internal/models"
)

// HashPassword hashes the given password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword compares a bcrypt hash against a plain password.
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// UserRepository owns the in-memory collection of user accounts. Users
// come from the startup data set only; there is no registration.
type UserRepository struct {
	mu    sync.RWMutex
	users map[int]*models.User
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int]*models.User)}
}

// Seed installs user accounts as-is, keeping their IDs.
func (r *UserRepository) Seed(users []models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range users {
		user := u
		r.users[user.ID] = &user
	}
}

// FindByID returns a copy of the user, or ErrNotFound.
func (r *UserRepository) FindByID(id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	user := *u
	return &user, nil
}

// FindByEmail returns a copy of the user with the given email, or
// ErrNotFound.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%w: user with email %s", ErrNotFound, email)
}
