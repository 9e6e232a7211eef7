package services

import (
	"fmt"

	"simple-todo-api/internal/models"
	"simple-todo-api/internal/repositories"
)

// AuthService verifies user credentials.
type AuthService struct {
	userRepo *repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo *repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Authenticate returns the user matching the credentials, or an error
// when either the email or the password is wrong.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := repositories.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	user.PasswordHash = ""
	return user, nil
}
