package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-assigner/internal/constants"
	"github.com/yukikurage/task-assigner/internal/dto"
	"github.com/yukikurage/task-assigner/internal/models"
)

func newContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindJSON(t *testing.T) {
	type request struct {
		Assignee dto.Nullable[string] `json:"assignee"`
		Title    *string              `json:"title"`
	}

	t.Run("empty body decodes as empty object", func(t *testing.T) {
		c, w := newContext("")
		var req request
		assert.True(t, bindJSON(c, "Task", &req))
		assert.False(t, req.Assignee.Set)
		assert.Nil(t, req.Title)
		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("explicit null is kept apart from absence", func(t *testing.T) {
		c, _ := newContext(`{"assignee":null}`)
		var req request
		require.True(t, bindJSON(c, "Task", &req))
		assert.True(t, req.Assignee.Set)
		assert.Nil(t, req.Assignee.Value)
	})

	t.Run("malformed body is a validation error", func(t *testing.T) {
		c, w := newContext(`{"title":`)
		var req request
		assert.False(t, bindJSON(c, "Task", &req))
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Task", body["title"])
		assert.Equal(t, msgInvalidBody, body["message"])
	})
}

func TestRespondOK(t *testing.T) {
	c, w := newContext("")
	respondOK(c, "Project", "Project created successfully", gin.H{"id": "x"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"Project","message":"Project created successfully","data":{"id":"x"}}`, w.Body.String())
}

func TestActor(t *testing.T) {
	c, w := newContext("")
	_, ok := actor(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := &models.User{FullName: "Test User", Role: models.RoleUser}
	c, _ = newContext("")
	c.Set(constants.ContextKeyUser, user)
	got, ok := actor(c)
	require.True(t, ok)
	assert.Same(t, user, got)
}

func TestMe(t *testing.T) {
	user := &models.User{FullName: "Test User", Role: models.RoleSupervisor, IsActive: true}
	c, w := newContext("")
	c.Set(constants.ContextKeyUser, user)

	NewAuthHandler(nil).Me(c)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Title string      `json:"title"`
		Data  dto.UserDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Accounts", env.Title)
	assert.Equal(t, models.RoleSupervisor, env.Data.Role)
	assert.Equal(t, "Test User", env.Data.FullName)
}
