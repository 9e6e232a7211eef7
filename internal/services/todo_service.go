package services

import (
	"errors"
	"fmt"

	"simple-todo-api/internal/models"
	"simple-todo-api/internal/repositories"
)

// ListReader is the read-only view of the list store the todo service
// needs to validate list references.
type ListReader interface {
	FindByID(id int) (*models.List, error)
}

// TodoService handles todo operations on behalf of a resolved user.
type TodoService struct {
	todoRepo *repositories.TodoRepository
	lists    ListReader
}

// NewTodoService creates a new TodoService. lists supplies the
// cross-store reference check for listId.
func NewTodoService(todoRepo *repositories.TodoRepository, lists ListReader) *TodoService {
	return &TodoService{todoRepo: todoRepo, lists: lists}
}

// GetTodos returns the user's todos, optionally narrowed to one list,
// sorted as requested.
func (s *TodoService) GetTodos(userID, listID int, sortKey, order string) []models.Todo {
	return s.todoRepo.FindAllByUserID(userID, listID, sortKey, order)
}

// GetTodo returns a single todo, refusing callers who do not own it.
func (s *TodoService) GetTodo(id, userID int) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if todo.UserID != userID {
		return nil, fmt.Errorf("%w: unauthorised for the data", repositories.ErrForbidden)
	}
	return todo, nil
}

// checkListRef verifies that a non-zero listId names an existing list
// owned by userID.
func (s *TodoService) checkListRef(listID, userID int) error {
	list, err := s.lists.FindByID(listID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: cannot find listID %d", repositories.ErrValidation, listID)
		}
		return err
	}
	if list.UserID != userID {
		return fmt.Errorf("%w: you cannot add ToDo to this list", repositories.ErrForbidden)
	}
	return nil
}

// CreateTodo creates a new todo owned by userID. A non-zero listId must
// reference an existing list owned by the same user.
func (s *TodoService) CreateTodo(userID int, req models.TodoCreateRequest) (*models.Todo, error) {
	if req.ListID != 0 {
		if err := s.checkListRef(req.ListID, userID); err != nil {
			return nil, err
		}
	}
	return s.todoRepo.Create(userID, req)
}

// UpdateTodo applies a patch to the user's todo. A patched listId is
// validated the same way as at creation, so a todo can never be moved
// onto another user's list.
func (s *TodoService) UpdateTodo(id, userID int, patch models.TodoPatch) (*models.Todo, error) {
	if patch.ListID != nil && *patch.ListID != 0 {
		if err := s.checkListRef(*patch.ListID, userID); err != nil {
			return nil, err
		}
	}
	return s.todoRepo.Update(id, userID, patch)
}

// DeleteTodo removes the user's todo and returns its ID.
func (s *TodoService) DeleteTodo(id, userID int) (int, error) {
	return s.todoRepo.Delete(id, userID)
}
