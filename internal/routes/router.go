// Package routes wires the repositories, services and handlers into
// the gin engine.
package routes

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"simple-todo-api/internal/handlers"
	"simple-todo-api/internal/repositories"
	"simple-todo-api/internal/services"
)

// SetupRouter registers every endpoint against the given stores. The
// stores are constructed (and seeded) by the caller so tests can run
// against fresh ones.
func SetupRouter(userRepo *repositories.UserRepository, listRepo *repositories.ListRepository, todoRepo *repositories.TodoRepository) *gin.Engine {
	r := gin.Default()

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{origin}
	config.AllowMethods = []string{"GET", "PUT", "POST", "DELETE", "PATCH"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	// Services
	listService := services.NewListService(listRepo)
	todoService := services.NewTodoService(todoRepo, listRepo)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	sessionService := services.NewSessionService()

	// Handlers
	listHandler := handlers.NewListHandler(listService)
	todoHandler := handlers.NewTodoHandler(todoService)
	authHandler := handlers.NewAuthHandler(authService, userService, sessionService)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	RegisterDocs(r)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.LoginHandler)
		auth.POST("/logout", authHandler.LogoutHandler)
		auth.GET("/me", authHandler.MeHandler)
	}

	authorized := r.Group("/")
	authorized.Use(AuthMiddleware(sessionService))
	{
		authorized.GET("/list", listHandler.GetListsHandler)
		authorized.GET("/list/:listId", listHandler.GetListByIDHandler)
		authorized.POST("/list", listHandler.CreateListHandler)
		authorized.PATCH("/list/:listId", listHandler.UpdateListHandler)
		authorized.DELETE("/list/:listId", listHandler.DeleteListHandler)

		authorized.GET("/todo", todoHandler.GetTodosHandler)
		authorized.GET("/todo/:id", todoHandler.GetTodoByIDHandler)
		authorized.POST("/todo", todoHandler.CreateTodoHandler)
		authorized.PATCH("/todo/:id", todoHandler.UpdateTodoHandler)
		authorized.DELETE("/todo/:id", todoHandler.DeleteTodoHandler)
	}

	return r
}
