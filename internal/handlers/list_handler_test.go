package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-todo-api/internal/models"
	"simple-todo-api/testutil"
)

func TestCreateAndUpdateList_OwnershipScenario(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)

	cookie1 := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)
	cookie2 := testutil.LoginAndGetCookie(t, router, testutil.User2Email, testutil.User2Password)

	resp := testutil.DoJSON(t, router, http.MethodPost, "/list", cookie1, models.ListCreateRequest{Name: "Red"})
	require.Equal(t, http.StatusOK, resp.Code)

	var created models.List
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, 100, created.ID)
	assert.Equal(t, 1, created.UserID)
	assert.Equal(t, "Red", created.Name)
	assert.Equal(t, 0, created.Priority)
	assert.Equal(t, "#000", created.Color)
	assert.Equal(t, "#fff", created.BgColor)

	t.Run("another user cannot update the list", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/list/%d", created.ID), cookie2, map[string]any{"priority": 5})
		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("the owner updates priority, the name stays", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/list/%d", created.ID), cookie1, map[string]any{"priority": 5})
		require.Equal(t, http.StatusOK, resp.Code)

		var updated models.List
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
		assert.Equal(t, 5, updated.Priority)
		assert.Equal(t, "Red", updated.Name)
	})
}

func TestDeleteList_ConflictUntilEmpty(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)
	cookie := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)

	list := testutil.CreateTestList(t, router, cookie, "Chores", 0)
	todo := testutil.CreateTestTodo(t, router, cookie, "Paint the fence", list.ID)

	resp := testutil.DoJSON(t, router, http.MethodDelete, fmt.Sprintf("/list/%d", list.ID), cookie, nil)
	require.Equal(t, http.StatusConflict, resp.Code, "a list with todos cannot be deleted")

	resp = testutil.DoJSON(t, router, http.MethodDelete, fmt.Sprintf("/todo/%d", todo.ID), cookie, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = testutil.DoJSON(t, router, http.MethodDelete, fmt.Sprintf("/list/%d", list.ID), cookie, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var result map[string]int
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, list.ID, result["id"])
}

func TestGetLists_SortParameters(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)
	cookie := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)

	testutil.CreateTestList(t, router, cookie, "Bravo", 5)
	testutil.CreateTestList(t, router, cookie, "Alpha", 1)
	testutil.CreateTestList(t, router, cookie, "Charlie", 3)

	t.Run("priority asc", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, "/list?sort=priority&order=asc", cookie, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var lists []models.List
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &lists))
		require.Len(t, lists, 3)
		for i := 1; i < len(lists); i++ {
			assert.GreaterOrEqual(t, lists[i].Priority, lists[i-1].Priority)
		}
	})

	t.Run("default is priority desc", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, "/list", cookie, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var lists []models.List
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &lists))
		require.Len(t, lists, 3)
		for i := 1; i < len(lists); i++ {
			assert.LessOrEqual(t, lists[i].Priority, lists[i-1].Priority)
		}
	})

	t.Run("name asc", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, "/list?sort=name&order=asc", cookie, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var lists []models.List
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &lists))
		require.Len(t, lists, 3)
		assert.Equal(t, "Alpha", lists[0].Name)
		assert.Equal(t, "Charlie", lists[2].Name)
	})
}

func TestGetListByID(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)
	cookie1 := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)
	cookie2 := testutil.LoginAndGetCookie(t, router, testutil.User2Email, testutil.User2Password)

	list := testutil.CreateTestList(t, router, cookie1, "Mine", 0)

	t.Run("owner gets the list", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/list/%d", list.ID), cookie1, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var fetched models.List
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fetched))
		assert.Equal(t, list.ID, fetched.ID)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/list/%d", list.ID), cookie2, nil)
		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("missing list answers null", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, "/list/9999", cookie1, nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "null", resp.Body.String())
	})

	t.Run("non-positive id is not acceptable", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, "/list/abc", cookie1, nil)
		require.Equal(t, http.StatusNotAcceptable, resp.Code)
	})
}

func TestListEndpoints_Validation(t *testing.T) {
	router, _, _, _ := testutil.SetupTestRouter(t)
	cookie := testutil.LoginAndGetCookie(t, router, testutil.User1Email, testutil.User1Password)

	t.Run("create without a name", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodPost, "/list", cookie, map[string]any{"priority": 2})
		require.Equal(t, http.StatusNotAcceptable, resp.Code)
	})

	t.Run("patch without any field", func(t *testing.T) {
		list := testutil.CreateTestList(t, router, cookie, "Patchable", 0)
		resp := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/list/%d", list.ID), cookie, map[string]any{})
		require.Equal(t, http.StatusNotAcceptable, resp.Code)
	})

	t.Run("no session answers 401", func(t *testing.T) {
		resp := testutil.DoJSON(t, router, http.MethodGet, "/list", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}
