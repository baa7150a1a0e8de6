package handler

import (
	"errors"
	"net/http"

	"sentiment-service/internal/models"
	"sentiment-service/internal/sentiment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PredictHandler interface {
	Predict(c *gin.Context)
	ModelInfo(c *gin.Context)
}

type predictHandler struct {
	model  *sentiment.Holder
	logger *zap.Logger
}

func NewPredictHandler(model *sentiment.Holder, logger *zap.Logger) PredictHandler {
	return &predictHandler{model: model, logger: logger}
}

// Predict handles POST /predict
func (h *predictHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.model.Predict(req.Text)
	if err != nil {
		if errors.Is(err, sentiment.ErrModelNotLoaded) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Model not loaded. Train a model and mount its artifact before calling /predict.",
			})
			return
		}
		h.logger.Error("Prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ModelInfo handles GET /model/info
func (h *predictHandler) ModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.model.Info())
}
