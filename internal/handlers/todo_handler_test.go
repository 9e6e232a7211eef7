package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-todo-api/internal/models"
	"simple-todo-api/testutil"
)

func TestCreateTodo_Defaults(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)
	cookie := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)

	before := time.Now().UnixMilli()
	resp := testutil.DoJSON(t, router, http.MethodPost, "/todo", cookie, map[string]any{"description": "buy milk"})
	require.Equal(t, http.StatusOK, resp.Code)

	var todo models.Todo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &todo))
	assert.Equal(t, 500, todo.ID)
	assert.Equal(t, 1, todo.UserID)
	assert.False(t, todo.Completed)
	assert.Equal(t, 0, todo.ListID)
	assert.Equal(t, 0, todo.Priority)
	assert.Equal(t, "", todo.DueToDate)
	assert.Equal(t, "", todo.DueToTime)
	assert.GreaterOrEqual(t, todo.Created, before)
}

func TestCreateTodo_ListReferenceChecks(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)
	cookie1 := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)
	cookie2 := testutil.LoginAndGetCookie(t, router, testutil.User2Email, testutil.User2Password)

	foreignList := testutil.CreateTestList(t, router, cookie2, "Not yours", 0)

	t.Run("another user's list is refused", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPost, "/todo", cookie1, models.TodoCreateRequest{Description: "sneaky", ListID: foreignList.ID})
		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("a nonexistent list is not acceptable", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPost, "/todo", cookie1, models.TodoCreateRequest{Description: "lost", ListID: 4242})
		require.Equal(t, http.StatusNotAcceptable, resp.Code)
	})

	t.Run("missing description is not acceptable", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPost, "/todo", cookie1, map[string]any{"listId": 0})
		require.Equal(t, http.StatusNotAcceptable, resp.Code)
	})
}

func TestUpdateTodo(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)
	cookie1 := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)
	cookie2 := testutil.LoginAndGetCookie(t, router, testutil.User2Email, testutil.User2Password)

	todo := testutil.CreateTestTodo(t, router, cookie1, "buy milk", 0)
	foreignList := testutil.CreateTestList(t, router, cookie2, "Not yours", 0)

	t.Run("completing and reopening", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/todo/%d", todo.ID), cookie1, map[string]any{"completed": true})
		require.Equal(t, http.StatusOK, resp.Code)

		var updated models.Todo
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
		assert.True(t, updated.Completed)

		resp = testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/todo/%d", todo.ID), cookie1, map[string]any{"completed": false})
		require.Equal(t, http.StatusOK, resp.Code)
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
		assert.False(t, updated.Completed)
	})

	t.Run("moving onto another user's list is refused", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/todo/%d", todo.ID), cookie1, map[string]any{"listId": foreignList.ID})
		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("another user cannot update the todo", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/todo/%d", todo.ID), cookie2, map[string]any{"completed": true})
		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("empty patch is not acceptable", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/todo/%d", todo.ID), cookie1, map[string]any{})
		require.Equal(t, http.StatusNotAcceptable, resp.Code)
	})
}

func TestDeleteTodo(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)
	cookie1 := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)
	cookie2 := testutil.LoginAndGetCookie(t, router, testutil.User2Email, testutil.User2Password)

	todo := testutil.CreateTestTodo(t, router, cookie1, "buy milk", 0)

	t.Run("nonexistent id answers 404", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodDelete, "/todo/999", cookie1, nil)
		require.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("another user cannot delete the todo", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodDelete, fmt.Sprintf("/todo/%d", todo.ID), cookie2, nil)
		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("the owner gets the deleted id back", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodDelete, fmt.Sprintf("/todo/%d", todo.ID), cookie1, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var result map[string]int
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
		assert.Equal(t, todo.ID, result["id"])
	})
}

func TestGetTodos_FilterAndSort(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)
	cookie := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)

	list := testutil.CreateTestList(t, router, cookie, "Groceries", 0)
	testutil.CreateTestTodo(t, router, cookie, "bananas", list.ID)
	testutil.CreateTestTodo(t, router, cookie, "apples", list.ID)
	testutil.CreateTestTodo(t, router, cookie, "unrelated chore", 0)

	t.Run("listId narrows the result", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/todo?listId=%d", list.ID), cookie, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var todos []models.Todo
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &todos))
		require.Len(t, todos, 2)
		for _, todo := range todos {
			assert.Equal(t, list.ID, todo.ListID)
		}
	})

	t.Run("name sort ascends over descriptions", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/todo?listId=%d&sort=name&order=asc", list.ID), cookie, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var todos []models.Todo
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &todos))
		require.Len(t, todos, 2)
		assert.Equal(t, "apples", todos[0].Description)
		assert.Equal(t, "bananas", todos[1].Description)
	})

	t.Run("a non-integer listId is not acceptable", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, "/todo?listId=abc", cookie, nil)
		require.Equal(t, http.StatusNotAcceptable, resp.Code)
	})

	t.Run("missing todo answers null", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, "/todo/9999", cookie, nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "null", resp.Body.String())
	})
}
