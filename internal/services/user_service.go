package services

import (
	"simple-todo-api/internal/models"
	"simple-todo-api/internal/repositories"
)

// UserService exposes user account lookups.
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID returns the user's public profile.
func (s *UserService) GetUserByID(id int) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
