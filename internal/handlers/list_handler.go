package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"simple-todo-api/internal/models"
	"simple-todo-api/internal/repositories"
	"simple-todo-api/internal/services"
)

// ListHandler serves the /list endpoints.
type ListHandler struct {
	listService *services.ListService
}

// NewListHandler creates a new ListHandler.
func NewListHandler(listService *services.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// GetListsHandler returns the caller's lists, sorted by the "sort"
// (priority or name) and "order" (asc or desc) query parameters.
func (h *ListHandler) GetListsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sortKey := c.DefaultQuery("sort", repositories.ListSortPriority)
	order := c.DefaultQuery("order", repositories.OrderDesc)

	lists := h.listService.GetLists(userID, sortKey, order)
	c.JSON(http.StatusOK, lists)
}

// GetListByIDHandler returns one list. A missing list answers 200 null,
// a list owned by someone else answers 403.
func (h *ListHandler) GetListByIDHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := parseEntityID(c, "listId", "listId must be the positive integer value")
	if !ok {
		return
	}

	list, err := h.listService.GetList(listID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateListHandler creates a new list for the caller.
func (h *ListHandler) CreateListHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ListCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "field 'name' cannot be empty"})
		return
	}

	list, err := h.listService.CreateList(userID, req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateListHandler patches the caller's list. Only the fields present
// in the body are changed.
func (h *ListHandler) UpdateListHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := parseEntityID(c, "listId", "listId must be the positive integer value")
	if !ok {
		return
	}

	var patch models.ListPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "Invalid request payload"})
		return
	}
	if patch.IsEmpty() {
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "There are no fields for update"})
		return
	}

	list, err := h.listService.UpdateList(listID, userID, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteListHandler deletes the caller's list and returns its ID. A
// list that still has todos answers 409.
func (h *ListHandler) DeleteListHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := parseEntityID(c, "listId", "listId must be the positive integer value")
	if !ok {
		return
	}

	id, err := h.listService.DeleteList(listID, userID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
