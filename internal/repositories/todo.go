package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"simple-todo-api/internal/models"
)

// Todo sort keys. "name" compares the description text.
const (
	TodoSortCreated  = "created"
	TodoSortPriority = "priority"
	TodoSortName     = "name"
)

// todoIDSeed is the first ID handed out for todos; seed data stays below it.
const todoIDSeed = 500

// TodoRepository owns the in-memory collection of todos.
type TodoRepository struct {
	mu    sync.RWMutex
	todos map[int]*models.Todo
	ids   *IDAllocator
}

// NewTodoRepository creates an empty todo store.
func NewTodoRepository() *TodoRepository {
	return &TodoRepository{
		todos: make(map[int]*models.Todo),
		ids:   NewIDAllocator(todoIDSeed),
	}
}

// Seed installs initial todos as-is, keeping their IDs.
func (r *TodoRepository) Seed(todos []models.Todo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range todos {
		todo := t
		r.todos[todo.ID] = &todo
	}
}

// FindAllByUserID returns copies of every todo owned by userID and,
// when listID is non-zero, assigned to that list. Sorted by sortKey
// ("created" by default, "priority", or "name" comparing descriptions)
// in the given order ("desc" by default).
func (r *TodoRepository) FindAllByUserID(userID, listID int, sortKey, order string) []models.Todo {
	r.mu.RLock()
	result := make([]models.Todo, 0)
	for _, t := range r.todos {
		if t.UserID == userID && (listID == 0 || t.ListID == listID) {
			result = append(result, *t)
		}
	}
	r.mu.RUnlock()

	mult := orderMultiplier(order)
	sort.Slice(result, func(i, j int) bool {
		switch sortKey {
		case TodoSortPriority:
			return lessInt(int64(result[i].Priority), int64(result[j].Priority), mult)
		case TodoSortName:
			return lessString(result[i].Description, result[j].Description, mult)
		default:
			return lessInt(result[i].Created, result[j].Created, mult)
		}
	})
	return result
}

// FindByID returns a copy of the todo, or ErrNotFound. No ownership
// check happens here.
func (r *TodoRepository) FindByID(id int) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.todos[id]
	if !ok {
		return nil, fmt.Errorf("%w: the todo with ID %d not found", ErrNotFound, id)
	}
	todo := *t
	return &todo, nil
}

// Create stores a new todo for userID. The store assigns the ID and the
// creation timestamp and always starts the todo as not completed. The
// list reference, if any, must have been validated by the caller.
func (r *TodoRepository) Create(userID int, req models.TodoCreateRequest) (*models.Todo, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("%w: field 'description' cannot be empty", ErrValidation)
	}

	todo := &models.Todo{
		ID:          r.ids.Next(),
		UserID:      userID,
		ListID:      req.ListID,
		Description: req.Description,
		Completed:   false,
		Created:     time.Now().UnixMilli(),
		Priority:    req.Priority,
		DueToDate:   req.DueToDate,
		DueToTime:   req.DueToTime,
	}

	r.mu.Lock()
	r.todos[todo.ID] = todo
	r.mu.Unlock()

	created := *todo
	return &created, nil
}

// Update applies the non-nil patch fields to the todo after the
// ownership check.
func (r *TodoRepository) Update(id, userID int, patch models.TodoPatch) (*models.Todo, error) {
	if patch.Description != nil && *patch.Description == "" {
		return nil, fmt.Errorf("%w: field 'description' cannot be empty", ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return nil, fmt.Errorf("%w: the todo with ID %d not found", ErrNotFound, id)
	}
	if t.UserID != userID {
		return nil, fmt.Errorf("%w: you cannot change the todo", ErrForbidden)
	}

	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.ListID != nil {
		t.ListID = *patch.ListID
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueToDate != nil {
		t.DueToDate = *patch.DueToDate
	}
	if patch.DueToTime != nil {
		t.DueToTime = *patch.DueToTime
	}

	updated := *t
	return &updated, nil
}

// Delete removes the todo and returns its ID, failing with ErrNotFound
// or ErrForbidden.
func (r *TodoRepository) Delete(id, userID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return 0, fmt.Errorf("%w: you cannot delete the todo", ErrNotFound)
	}
	if t.UserID != userID {
		return 0, fmt.Errorf("%w: you cannot delete the todo", ErrForbidden)
	}

	delete(r.todos, id)
	return id, nil
}

// HasTodosForList reports whether any todo, regardless of owner, still
// references listID. Consulted by the list store before a delete.
func (r *TodoRepository) HasTodosForList(listID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.todos {
		if t.ListID == listID {
			return true
		}
	}
	return false
}
