// Package testutil holds shared fixtures for the handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"simple-todo-api/internal/models"
	"simple-todo-api/internal/repositories"
	"simple-todo-api/internal/routes"
)

// Test accounts installed by SetupTestRouter.
const (
	User1Email    = "user1@test.net"
	User1Password = "1111"
	User2Email    = "user2@test.net"
	User2Password = "2222"
)

// SetupTestRouter builds a router against fresh in-memory stores with
// two seeded users (IDs 1 and 2). Every test gets its own state.
func SetupTestRouter(t *testing.T) (*gin.Engine, *repositories.UserRepository, *repositories.ListRepository, *repositories.TodoRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key")
	gin.SetMode(gin.TestMode)

	todoRepo := repositories.NewTodoRepository()
	listRepo := repositories.NewListRepository(todoRepo)
	userRepo := repositories.NewUserRepository()

	hash1, err := repositories.HashPassword(User1Password)
	require.NoError(t, err)
	hash2, err := repositories.HashPassword(User2Password)
	require.NoError(t, err)
	userRepo.Seed([]models.User{
		{ID: 1, Email: User1Email, Name: "Leanne Graham", Username: "Bret", PasswordHash: hash1},
		{ID: 2, Email: User2Email, Name: "Ervin Howell", Username: "Antonette", PasswordHash: hash2},
	})

	router := routes.SetupRouter(userRepo, listRepo, todoRepo)
	return router, userRepo, listRepo, todoRepo
}

// LoginAndGetCookie logs the user in and returns the session cookie
// value.
func LoginAndGetCookie(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body, err := json.Marshal(models.UserLoginRequest{Email: email, Password: password})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code, "login should succeed")
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("no session cookie in login response")
	return ""
}

// DoJSON performs a request with the session cookie attached and an
// optional JSON body.
func DoJSON(t *testing.T, router *gin.Engine, method, path, cookie string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// CreateTestList creates a list through the API and returns it.
func CreateTestList(t *testing.T, router *gin.Engine, cookie, name string, priority int) models.List {
	t.Helper()

	resp := DoJSON(t, router, http.MethodPost, "/list", cookie, models.ListCreateRequest{Name: name, Priority: priority})
	require.Equal(t, http.StatusOK, resp.Code, "list creation should succeed")

	var list models.List
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	return list
}

// CreateTestTodo creates a todo through the API and returns it.
func CreateTestTodo(t *testing.T, router *gin.Engine, cookie, description string, listID int) models.Todo {
	t.Helper()

	resp := DoJSON(t, router, http.MethodPost, "/todo", cookie, models.TodoCreateRequest{Description: description, ListID: listID})
	require.Equal(t, http.StatusOK, resp.Code, fmt.Sprintf("todo creation should succeed: %s", resp.Body.String()))

	var todo models.Todo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &todo))
	return todo
}
