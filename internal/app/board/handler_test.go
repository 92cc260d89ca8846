package board

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boardapi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserHeader = "X-Test-User"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	ID      *int64          `json:"idx"`
}

func setupRouter() (*gin.Engine, *memoryRepository) {
	gin.SetMode(gin.TestMode)
	repo := newMemoryRepository()
	h := NewHandler(NewService(repo, zap.NewNop()))

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if user := c.GetHeader(testUserHeader); user != "" {
			middleware.SetCallerID(c, user)
		}
		c.Next()
	})
	RegisterRoutes(engine.Group("/api"), h)
	return engine, repo
}

func doRequest(t *testing.T, engine *gin.Engine, method, target, body, user string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if user != "" {
		req.Header.Set(testUserHeader, user)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestHandler_CreateThenGet(t *testing.T) {
	engine, _ := setupRouter()

	w, env := doRequest(t, engine, http.MethodPost, "/api/board", `{"title":" Hello ","content":"World"}`, "alice")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, msgCreated, env.Message)
	require.NotNil(t, env.ID)
	assert.Equal(t, int64(1), *env.ID)

	w, env = doRequest(t, engine, http.MethodGet, "/api/board/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var b Board
	require.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, "Hello", b.Title)
	require.NotNil(t, b.OwnerID)
	assert.Equal(t, "alice", *b.OwnerID)
}

func TestHandler_CreateValidation(t *testing.T) {
	engine, repo := setupRouter()

	w, env := doRequest(t, engine, http.MethodPost, "/api/board", `{"title":"","content":"World"}`, "alice")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, msgRequired, env.Message)
	assert.Nil(t, env.ID)
	assert.Zero(t, repo.count("InsertBoard"))
}

func TestHandler_MalformedBody(t *testing.T) {
	engine, _ := setupRouter()

	w, env := doRequest(t, engine, http.MethodPost, "/api/board", `{"title":`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	req := httptest.NewRequest(http.MethodPost, "/api/board", strings.NewReader("title=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetMissingAndBadID(t *testing.T) {
	engine, _ := setupRouter()

	w, env := doRequest(t, engine, http.MethodGet, "/api/board/42", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgNotFound, env.Message)

	w, env = doRequest(t, engine, http.MethodGet, "/api/board/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidID, env.Message)
}

func TestHandler_UpdateAndDeleteOwnership(t *testing.T) {
	engine, repo := setupRouter()
	repo.seed(Board{ID: 5, Title: "T", Content: "C", OwnerID: strPtr("alice")})

	w, env := doRequest(t, engine, http.MethodPut, "/api/board/5", `{"title":"X","content":"Y"}`, "bob")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, msgForbidden, env.Message)

	w, _ = doRequest(t, engine, http.MethodDelete, "/api/board/5", "", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = doRequest(t, engine, http.MethodPut, "/api/board/5", `{"title":"X","content":"Y"}`, "alice")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgUpdated, env.Message)

	w, env = doRequest(t, engine, http.MethodDelete, "/api/board/5", "", "alice")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgDeleted, env.Message)

	w, _ = doRequest(t, engine, http.MethodDelete, "/api/board/5", "", "alice")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListPage(t *testing.T) {
	engine, repo := setupRouter()
	for i := 1; i <= 22; i++ {
		repo.seed(Board{ID: int64(i), Title: "T", Content: "C"})
	}

	w, env := doRequest(t, engine, http.MethodGet, "/api/board?page=3&size=10", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list BoardListResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list.Boards, 2)
	assert.Equal(t, 3, list.Pagination.TotalPages)
	assert.Equal(t, 20, list.Pagination.Offset)
}

func TestHandler_ListIgnoresBadQuery(t *testing.T) {
	engine, repo := setupRouter()
	repo.seed(Board{ID: 1, Title: "T", Content: "C"})

	w, env := doRequest(t, engine, http.MethodGet, "/api/board?page=x&size=-4", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list BoardListResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list.Boards, 1)
	assert.Equal(t, 1, list.Pagination.Page)
}
