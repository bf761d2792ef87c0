package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primefinder/internal/models"
)

type stubService struct {
	searchRes *models.SearchResponse
	listRes   *models.SearchListResponse
	err       error
}

func (s *stubService) CreateSearch(ctx context.Context, req models.CreateSearchRequest) (*models.SearchResponse, error) {
	return s.searchRes, s.err
}

func (s *stubService) GetSearch(ctx context.Context, searchID string) (*models.SearchResponse, error) {
	return s.searchRes, s.err
}

func (s *stubService) ListSearches(ctx context.Context) (*models.SearchListResponse, error) {
	return s.listRes, s.err
}

func setupHandlerTest(t *testing.T, srv Servicer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(srv, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := gin.New()
	r.POST("search", h.CreateSearch)
	r.GET("search/:id", h.GetSearch)
	r.GET("searches", h.ListSearches)
	return r
}

func TestCreateSearch_OK(t *testing.T) {
	t.Parallel()

	srv := &stubService{searchRes: &models.SearchResponse{
		Search: &models.Search{ID: "abc", Status: models.StatusPending, UpperBound: 100},
	}}
	r := setupHandlerTest(t, srv)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"upper_bound": 100}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"abc"`)
}

func TestCreateSearch_BadJSON(t *testing.T) {
	t.Parallel()

	r := setupHandlerTest(t, &stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"upper_bound": `))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"request":"/search"`)
}

func TestCreateSearch_MissingUpperBound(t *testing.T) {
	t.Parallel()

	r := setupHandlerTest(t, &stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSearch_ServiceError(t *testing.T) {
	t.Parallel()

	r := setupHandlerTest(t, &stubService{err: errors.New("search with id x not found")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search/x", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestListSearches_OK(t *testing.T) {
	t.Parallel()

	srv := &stubService{listRes: &models.SearchListResponse{
		ActiveSearches:    []string{"a"},
		CompletedSearches: []string{"b"},
	}}
	r := setupHandlerTest(t, srv)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/searches", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active_searches":["a"]`)
	assert.Contains(t, w.Body.String(), `"completed_searches":["b"]`)
}
