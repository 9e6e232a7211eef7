package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simple-todo-api/internal/models"
	"simple-todo-api/internal/services"
)

// sessionCookie is the http-only cookie carrying the session token.
const sessionCookie = "token"

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	authService    *services.AuthService
	userService    *services.UserService
	sessionService *services.SessionService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService, sessionService *services.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, sessionService: sessionService}
}

// LoginHandler authenticates the caller and installs the session
// cookie. A caller that already carries a session cookie is refused.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	if existing, err := c.Cookie(sessionCookie); err == nil && existing != "" {
		c.JSON(http.StatusForbidden, gin.H{"message": "You're authorised already"})
		return
	}

	var req models.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "email or password is incorrect"})
		return
	}

	user, err := h.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "email or password is incorrect"})
		return
	}

	token, err := h.sessionService.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create session"})
		return
	}

	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"id": user.ID})
}

// LogoutHandler drops the session cookie.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	c.SetCookie(sessionCookie, "0", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// MeHandler returns the caller's profile, or null when no valid session
// exists. A stale cookie is expired on the way out.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, nil)
		return
	}

	userID, err := h.sessionService.ValidateToken(token)
	if err != nil {
		c.SetCookie(sessionCookie, "0", -1, "/", "", false, true)
		c.JSON(http.StatusOK, nil)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		c.SetCookie(sessionCookie, "0", -1, "/", "", false, true)
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, user)
}
