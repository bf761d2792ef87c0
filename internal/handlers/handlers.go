package handlers

import (
	"context"
	"log/slog"

	"primefinder/internal/models"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Servicer
	Log     *slog.Logger
}

type Servicer interface {
	CreateSearch(ctx context.Context, req models.CreateSearchRequest) (*models.SearchResponse, error)
	GetSearch(ctx context.Context, searchID string) (*models.SearchResponse, error)
	ListSearches(ctx context.Context) (*models.SearchListResponse, error)
}

func NewHandler(srv Servicer, log *slog.Logger) *Handler {
	return &Handler{
		service: srv,
		Log:     log,
	}
}

func (h *Handler) CreateSearch(c *gin.Context) {
	var req models.CreateSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Log.Error("invalid request", slog.String("path", c.Request.URL.Path), slog.String("error", err.Error()))

		c.JSON(400, models.ErrorResponse{
			Request: c.Request.URL.Path,
			Error:   err.Error(),
		})
		return
	}

	res, err := h.service.CreateSearch(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Request: c.Request.URL.Path,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(200, res)
}

func (h *Handler) GetSearch(c *gin.Context) {
	searchID := c.Param("id")

	res, err := h.service.GetSearch(c.Request.Context(), searchID)
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Request: c.Request.URL.Path,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(200, res)
}

func (h *Handler) ListSearches(c *gin.Context) {
	res, err := h.service.ListSearches(c.Request.Context())
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Request: c.Request.URL.Path,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(200, res)
}
