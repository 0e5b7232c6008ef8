package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"ytscribe/pipeline"
	"ytscribe/results"
	"ytscribe/types"
)

// server runs jobs for HTTP callers. A mutex serializes execution so the
// one-job-at-a-time invariant holds even under concurrent clients.
type server struct {
	handler *pipeline.Handler
	store   *results.Store // nil when Redis is not configured
	mu      sync.Mutex
}

func newServer(h *pipeline.Handler, store *results.Store) *server {
	return &server{handler: h, store: store}
}

func (s *server) registerRoutes(r *gin.Engine) {
	RegisterHealthRoutes(r)
	g := r.Group("/api/jobs")
	g.POST("", s.handleRunJob)
	g.GET("/:request_id", s.handleJobResult)
}

// handleRunJob runs one job synchronously and returns its result envelope.
// POST /api/jobs
// Expects: {"input": {...}} job envelope in the request body
func (s *server) handleRunJob(c *gin.Context) {
	var envelope types.JobEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	result := s.handler.Run(c.Request.Context(), envelope.Input)
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(c.Request.Context(), result); err != nil {
			log.Printf("result store save: %v", err)
		}
	}

	c.JSON(http.StatusOK, result)
}

// handleJobResult serves a cached recent result.
// GET /api/jobs/:request_id
func (s *server) handleJobResult(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "result store not configured"})
		return
	}

	result, err := s.store.Get(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no result for request id"})
		return
	}

	c.JSON(http.StatusOK, result)
}
