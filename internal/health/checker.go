package health

import (
	"sentiment-service/internal/repository"
	"sentiment-service/internal/sentiment"

	"go.uber.org/zap"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Status is the composite health payload.
type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"` // "connected" or "disconnected"
	Model    string `json:"model"`    // "loaded" or "not_loaded"
	Error    string `json:"error,omitempty"`
}

// Checker aggregates store connectivity and model state into one status.
type Checker struct {
	items  repository.ItemRepository
	model  *sentiment.Holder
	logger *zap.Logger
}

func NewChecker(items repository.ItemRepository, model *sentiment.Holder, logger *zap.Logger) *Checker {
	return &Checker{items: items, model: model, logger: logger}
}

// Check probes the store and reads the model state. A store failure makes the
// overall status unhealthy; a missing model is informational only, since item
// CRUD still works without it. Check never fails — a health probe must always
// answer.
func (c *Checker) Check() Status {
	status := Status{
		Status:   StatusHealthy,
		Database: "connected",
		Model:    "not_loaded",
	}

	if err := c.items.Ping(); err != nil {
		c.logger.Warn("Database liveness probe failed", zap.Error(err))
		status.Status = StatusUnhealthy
		status.Database = "disconnected"
		status.Error = err.Error()
	}

	if c.model.Loaded() {
		status.Model = "loaded"
	}

	return status
}
