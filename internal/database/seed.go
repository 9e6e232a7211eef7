// Package database loads the initial data set the stores are seeded
// with at startup.
package database

import (
	"encoding/json"
	"fmt"
	"os"

	"simple-todo-api/internal/models"
	"simple-todo-api/internal/repositories"
)

// SeedUser is a user account as it appears in the init data file. The
// demo passwords are plain text there and hashed at install time.
type SeedUser struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// InitData is the full initial data set, read once at startup.
type InitData struct {
	Users     []SeedUser    `json:"users"`
	TodoLists []models.List `json:"todoLists"`
	Todos     []models.Todo `json:"todos"`
}

// Load reads and parses the init data file.
func Load(path string) (*InitData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read init data %s: %w", path, err)
	}
	var data InitData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("could not parse init data %s: %w", path, err)
	}
	return &data, nil
}

// Apply seeds the stores with the loaded data.
func (d *InitData) Apply(userRepo *repositories.UserRepository, listRepo *repositories.ListRepository, todoRepo *repositories.TodoRepository) error {
	users := make([]models.User, 0, len(d.Users))
	for _, su := range d.Users {
		hash, err := repositories.HashPassword(su.Password)
		if err != nil {
			return fmt.Errorf("could not hash password for %s: %w", su.Email, err)
		}
		users = append(users, models.User{
			ID:           su.ID,
			Email:        su.Email,
			Name:         su.Name,
			Username:     su.Username,
			PasswordHash: hash,
		})
	}
	userRepo.Seed(users)
	listRepo.Seed(d.TodoLists)
	todoRepo.Seed(d.Todos)
	return nil
}
