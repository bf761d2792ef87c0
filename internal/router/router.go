package router

import (
	"primefinder/internal/handlers"

	"github.com/gin-gonic/gin"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	r.POST("search", h.CreateSearch)
	r.GET("search/:id", h.GetSearch)
	r.GET("searches", h.ListSearches)
	return r
}
