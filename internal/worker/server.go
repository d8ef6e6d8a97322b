package worker

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docsum/internal/backend/cluster"
	"docsum/internal/domain"
	"docsum/internal/vectorize"
)

// NewRouter builds the HTTP surface of a cluster worker. A worker is
// stateless: every request carries the vocabulary snapshot it should
// count against, so any worker can serve any slice of any batch.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/vectorize", handleVectorize)

	return r
}

func handleVectorize(c *gin.Context) {
	var req cluster.VectorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed vectorize request: " + err.Error()})
		return
	}
	vectors := make([]domain.Vector, len(req.Sentences))
	for i, tokens := range req.Sentences {
		vectors[i] = vectorize.Count(tokens, req.Vocab)
	}
	c.JSON(http.StatusOK, cluster.VectorizeResponse{Vectors: vectors})
}
