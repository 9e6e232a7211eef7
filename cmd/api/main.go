package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"simple-todo-api/internal/database"
	"simple-todo-api/internal/repositories"
	"simple-todo-api/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	initDataPath := os.Getenv("INIT_DATA")
	if initDataPath == "" {
		initDataPath = "_InitData/data.json"
	}
	data, err := database.Load(initDataPath)
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}

	// Todos first: the list store needs the todo counter for its
	// delete constraint.
	todoRepo := repositories.NewTodoRepository()
	listRepo := repositories.NewListRepository(todoRepo)
	userRepo := repositories.NewUserRepository()
	if err := data.Apply(userRepo, listRepo, todoRepo); err != nil {
		log.Fatalf("Fatal: %v", err)
	}
	log.Printf("Seeded %d users, %d lists, %d todos", len(data.Users), len(data.TodoLists), len(data.Todos))

	r := routes.SetupRouter(userRepo, listRepo, todoRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("Server listening on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
