package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simple-todo-api/internal/models"
	"simple-todo-api/internal/repositories"
	"simple-todo-api/internal/services"
)

// TodoHandler serves the /todo endpoints.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// GetTodosHandler returns the caller's todos. "listId" narrows the
// result to one list (0 or absent means all), "sort" is created,
// priority or name, "order" is asc or desc.
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	listID := 0
	if raw := c.Query("listId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusNotAcceptable, gin.H{"message": "listId must be integer value"})
			return
		}
		listID = parsed
	}
	sortKey := c.DefaultQuery("sort", repositories.TodoSortCreated)
	order := c.DefaultQuery("order", repositories.OrderDesc)

	todos := h.todoService.GetTodos(userID, listID, sortKey, order)
	c.JSON(http.StatusOK, todos)
}

// GetTodoByIDHandler returns one todo. A missing todo answers 200 null,
// a todo owned by someone else answers 403.
func (h *TodoHandler) GetTodoByIDHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	todoID, ok := parseEntityID(c, "id", "Id must be the positive integer value")
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodo(todoID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// CreateTodoHandler creates a new todo for the caller. A non-zero
// listId must reference one of the caller's own lists.
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.TodoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "field 'description' cannot be empty"})
		return
	}

	todo, err := h.todoService.CreateTodo(userID, req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// UpdateTodoHandler patches the caller's todo.
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	todoID, ok := parseEntityID(c, "id", "Id must be the positive integer value")
	if !ok {
		return
	}

	var patch models.TodoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "Invalid request payload"})
		return
	}
	if patch.IsEmpty() {
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "There are no fields for update"})
		return
	}

	todo, err := h.todoService.UpdateTodo(todoID, userID, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// DeleteTodoHandler deletes the caller's todo and returns its ID.
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	todoID, ok := parseEntityID(c, "id", "Id must be the positive integer value")
	if !ok {
		return
	}

	id, err := h.todoService.DeleteTodo(todoID, userID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
