// Package services holds the business logic between the handlers and
// the stores.
package services

import (
	"fmt"

	"simple-todo-api/internal/models"
	"simple-todo-api/internal/repositories"
)

// ListService handles todo-list operations on behalf of a resolved user.
type ListService struct {
	listRepo *repositories.ListRepository
}

// NewListService creates a new ListService.
func NewListService(listRepo *repositories.ListRepository) *ListService {
	return &ListService{listRepo: listRepo}
}

// GetLists returns the user's lists sorted as requested.
func (s *ListService) GetLists(userID int, sortKey, order string) []models.List {
	return s.listRepo.FindAllByUserID(userID, sortKey, order)
}

// GetList returns a single list, refusing callers who do not own it.
// The store lookup itself carries no ownership check, so it happens here.
func (s *ListService) GetList(id, userID int) (*models.List, error) {
	list, err := s.listRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if list.UserID != userID {
		return nil, fmt.Errorf("%w: unauthorised for the data", repositories.ErrForbidden)
	}
	return list, nil
}

// CreateList creates a new list owned by userID.
func (s *ListService) CreateList(userID int, req models.ListCreateRequest) (*models.List, error) {
	return s.listRepo.Create(userID, req)
}

// UpdateList applies a patch to the user's list.
func (s *ListService) UpdateList(id, userID int, patch models.ListPatch) (*models.List, error) {
	return s.listRepo.Update(id, userID, patch)
}

// DeleteList removes the user's list and returns its ID. The store
// refuses while any todo still references the list.
func (s *ListService) DeleteList(id, userID int) (int, error) {
	return s.listRepo.Delete(id, userID)
}
