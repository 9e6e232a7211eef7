package repositories

import (
	"fmt"
	"sort"
	"sync"

	"simple-todo-api/internal/models"
)

// List sort keys.
const (
	ListSortPriority = "priority"
	ListSortName     = "name"
)

// Defaults applied to omitted optional fields at list creation.
const (
	defaultListColor   = "#000"
	defaultListBgColor = "#fff"
)

// listIDSeed is the first ID handed out for lists; seed data stays below it.
const listIDSeed = 100

// TodoCounter is the read-only view of the todo store the list store
// needs for its delete constraint.
type TodoCounter interface {
	HasTodosForList(listID int) bool
}

// ListRepository owns the in-memory collection of todo lists. All
// access goes through the mutex; gin serves requests concurrently.
type ListRepository struct {
	mu    sync.RWMutex
	lists map[int]*models.List
	ids   *IDAllocator
	todos TodoCounter
}

// NewListRepository creates an empty list store. todos supplies the
// emptiness check used by Delete.
func NewListRepository(todos TodoCounter) *ListRepository {
	return &ListRepository{
		lists: make(map[int]*models.List),
		ids:   NewIDAllocator(listIDSeed),
		todos: todos,
	}
}

// Seed installs initial lists as-is, keeping their IDs. Meant for the
// startup data set, whose IDs sit below the allocator seed.
func (r *ListRepository) Seed(lists []models.List) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range lists {
		list := l
		r.lists[list.ID] = &list
	}
}

// FindAllByUserID returns copies of every list owned by userID, sorted
// by sortKey ("priority" by default, or "name") in the given order
// ("desc" by default). The returned slice is detached from the store.
func (r *ListRepository) FindAllByUserID(userID int, sortKey, order string) []models.List {
	r.mu.RLock()
	result := make([]models.List, 0)
	for _, l := range r.lists {
		if l.UserID == userID {
			result = append(result, *l)
		}
	}
	r.mu.RUnlock()

	mult := orderMultiplier(order)
	sort.Slice(result, func(i, j int) bool {
		if sortKey == ListSortName {
			return lessString(result[i].Name, result[j].Name, mult)
		}
		return lessInt(int64(result[i].Priority), int64(result[j].Priority), mult)
	})
	return result
}

// FindByID returns a copy of the list, or ErrNotFound. No ownership
// check happens here; callers decide whether the data may be exposed.
func (r *ListRepository) FindByID(id int) (*models.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.lists[id]
	if !ok {
		return nil, fmt.Errorf("%w: the list with ID %d not found", ErrNotFound, id)
	}
	list := *l
	return &list, nil
}

// Create stores a new list for userID, assigning the next ID and
// filling defaults for the omitted optional fields.
func (r *ListRepository) Create(userID int, req models.ListCreateRequest) (*models.List, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: field 'name' cannot be empty", ErrValidation)
	}

	list := &models.List{
		ID:       r.ids.Next(),
		UserID:   userID,
		Name:     req.Name,
		Priority: req.Priority,
		Color:    req.Color,
		BgColor:  req.BgColor,
	}
	if list.Color == "" {
		list.Color = defaultListColor
	}
	if list.BgColor == "" {
		list.BgColor = defaultListBgColor
	}

	r.mu.Lock()
	r.lists[list.ID] = list
	r.mu.Unlock()

	created := *list
	return &created, nil
}

// Update applies the non-nil patch fields to the list after the
// ownership check. The patch is validated up front so a failing update
// never leaves a partially applied list.
func (r *ListRepository) Update(id, userID int, patch models.ListPatch) (*models.List, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: field 'name' cannot be empty", ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[id]
	if !ok {
		return nil, fmt.Errorf("%w: the list with ID %d not found", ErrNotFound, id)
	}
	if l.UserID != userID {
		return nil, fmt.Errorf("%w: you cannot change the list", ErrForbidden)
	}

	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Priority != nil {
		l.Priority = *patch.Priority
	}
	if patch.Color != nil {
		l.Color = *patch.Color
	}
	if patch.BgColor != nil {
		l.BgColor = *patch.BgColor
	}

	updated := *l
	return &updated, nil
}

// Delete removes the list and returns its ID. It fails with
// ErrNotFound, ErrForbidden, or ErrConflict while any todo still
// references the list. The emptiness check and the removal run under
// the same lock.
func (r *ListRepository) Delete(id, userID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[id]
	if !ok {
		return 0, fmt.Errorf("%w: the list with ID %d not found", ErrNotFound, id)
	}
	if l.UserID != userID {
		return 0, fmt.Errorf("%w: you cannot delete the list", ErrForbidden)
	}
	if r.todos.HasTodosForList(id) {
		return 0, fmt.Errorf("%w: list not empty", ErrConflict)
	}

	delete(r.lists, id)
	return id, nil
}
