package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP surface of the summarization service.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "docsum extractive summarization API"})
	})
	r.POST("/summarize", h.Summarize)
	r.GET("/health", h.Health)

	return r
}
