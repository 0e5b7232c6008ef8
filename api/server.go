package api

import (
	"github.com/gin-gonic/gin"

	"ytscribe/pipeline"
	"ytscribe/results"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(h *pipeline.Handler, store *results.Store) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	s := newServer(h, store)
	s.registerRoutes(r)
	return r
}

// RegisterHealthRoutes adds the health endpoint to the engine.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handleHealth)
}

func handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy"})
}
