// Package handlers maps HTTP requests onto the services and the store
// failure taxonomy onto status codes.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simple-todo-api/internal/repositories"
)

// currentUserID reads the user identity resolved by the auth
// middleware. A false return means a response was already written.
func currentUserID(c *gin.Context) (int, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID not found in context"})
		return 0, false
	}
	userID, ok := userIDVal.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Invalid user ID type in context"})
		return 0, false
	}
	return userID, true
}

// parseEntityID reads a path parameter that must be a positive integer.
// A false return means a 406 was already written.
func parseEntityID(c *gin.Context, param, message string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id < 1 {
		c.JSON(http.StatusNotAcceptable, gin.H{"message": message})
		return 0, false
	}
	return id, true
}

// respondStoreError translates a store failure into its status code.
// The stores never see transport concerns; this is the only place the
// mapping lives.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, repositories.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, repositories.ErrValidation):
		c.JSON(http.StatusNotAcceptable, gin.H{"message": err.Error()})
	case errors.Is(err, repositories.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
