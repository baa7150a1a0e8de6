package handler

import (
	"net/http"

	"sentiment-service/internal/health"

	"github.com/gin-gonic/gin"
)

type HealthHandler interface {
	Root(c *gin.Context)
	Health(c *gin.Context)
}

type healthHandler struct {
	checker *health.Checker
	version string
}

func NewHealthHandler(checker *health.Checker, version string) HealthHandler {
	return &healthHandler{checker: checker, version: version}
}

// Root handles GET /
func (h *healthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "sentiment-service",
		"version": h.version,
	})
}

// Health handles GET /health. It always answers 200; an unreachable store is
// reported in the body, not as a transport failure.
func (h *healthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.checker.Check())
}
