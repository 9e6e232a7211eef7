package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simple-todo-api/internal/services"
)

// AuthMiddleware resolves the session cookie into a user identity and
// stores it in the context. Requests without a valid session are
// rejected with 401 before reaching the handlers.
func AuthMiddleware(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "You must be authorised for executing the functionality",
			})
			c.Abort()
			return
		}

		userID, err := sessionService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "You must be authorised for executing the functionality",
			})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
