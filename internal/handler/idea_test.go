package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vtrao/cheetah/internal/repository"
	"github.com/vtrao/cheetah/pkg/model"
	"go.uber.org/zap"
)

// fakeStore is an in-memory IdeaStore. failWith, when set, is returned by
// every data operation; pingErr only affects Ping.
type fakeStore struct {
	ideas    []model.Idea
	nextID   int64
	failWith error
	pingErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (s *fakeStore) Ping(ctx context.Context) error { return s.pingErr }

func (s *fakeStore) ListIdeas(ctx context.Context) ([]model.Idea, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	// newest first
	out := []model.Idea{}
	for i := len(s.ideas) - 1; i >= 0; i-- {
		out = append(out, s.ideas[i])
	}
	return out, nil
}

func (s *fakeStore) CreateIdea(ctx context.Context, content string) (*model.Idea, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	idea := model.Idea{
		ID:        s.nextID,
		Content:   content,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.nextID) * time.Second),
	}
	s.nextID++
	s.ideas = append(s.ideas, idea)
	return &idea, nil
}

func (s *fakeStore) GetIdeaByID(ctx context.Context, ideaID int64) (*model.Idea, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, idea := range s.ideas {
		if idea.ID == ideaID {
			return &idea, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newTestRouter(store IdeaStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(zap.NewNop(), store, "1.0.0")

	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/api/ideas", h.ListIdeas)
	r.POST("/api/ideas", h.CreateIdea)
	r.GET("/api/ideas/:idea_id", h.GetIdea)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateThenGetIdea(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := doJSON(t, r, http.MethodPost, "/api/ideas", []byte(`{"content": "ship it"}`))
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Idea
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "ship it", created.Content)
	assert.False(t, created.CreatedAt.IsZero())

	w = doJSON(t, r, http.MethodGet, "/api/ideas/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched model.Idea
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateIdeaMissingContent(t *testing.T) {
	r := newTestRouter(newFakeStore())

	for _, body := range []string{`{}`, `{"content": ""}`, `not json`} {
		w := doJSON(t, r, http.MethodPost, "/api/ideas", []byte(body))
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestListIdeasNewestFirst(t *testing.T) {
	r := newTestRouter(newFakeStore())

	for _, content := range []string{"first", "second", "third"} {
		w := doJSON(t, r, http.MethodPost, "/api/ideas", []byte(`{"content": "`+content+`"}`))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/ideas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ideas []model.Idea
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ideas))
	require.Len(t, ideas, 3)
	assert.Equal(t, "third", ideas[0].Content)
	assert.Equal(t, "first", ideas[2].Content)
	for i := 1; i < len(ideas); i++ {
		assert.True(t, !ideas[i-1].CreatedAt.Before(ideas[i].CreatedAt))
	}
}

func TestListIdeasEmpty(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := doJSON(t, r, http.MethodGet, "/api/ideas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetIdeaNotFound(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := doJSON(t, r, http.MethodGet, "/api/ideas/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestGetIdeaInvalidID(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := doJSON(t, r, http.MethodGet, "/api/ideas/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoreFailureIsGenericError(t *testing.T) {
	store := newFakeStore()
	store.failWith = errors.New("connect to database after 5 attempts: connection refused")
	r := newTestRouter(store)

	tests := []struct {
		method, path string
		body         []byte
		message      string
	}{
		{http.MethodGet, "/api/ideas", nil, "failed to fetch ideas"},
		{http.MethodPost, "/api/ideas", []byte(`{"content": "x"}`), "failed to add idea"},
		{http.MethodGet, "/api/ideas/1", nil, "failed to fetch idea"},
	}

	for _, tt := range tests {
		w := doJSON(t, r, tt.method, tt.path, tt.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", tt.method, tt.path)
		assert.Contains(t, w.Body.String(), tt.message)
		// driver detail must not leak
		assert.NotContains(t, w.Body.String(), "connection refused")
	}
}
