package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sentiment-service/internal/models"
	"sentiment-service/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ItemHandler interface {
	CreateItem(c *gin.Context)
	ListItems(c *gin.Context)
	GetItemByID(c *gin.Context)
}

type itemHandler struct {
	itemRepo repository.ItemRepository
	logger   *zap.Logger
}

func NewItemHandler(itemRepo repository.ItemRepository, logger *zap.Logger) ItemHandler {
	return &itemHandler{itemRepo: itemRepo, logger: logger}
}

// CreateItem handles POST /items
func (h *itemHandler) CreateItem(c *gin.Context) {
	var req models.ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.itemRepo.Create(req.Name, req.Description)
	if err != nil {
		h.logger.Error("Failed to create item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItems handles GET /items
func (h *itemHandler) ListItems(c *gin.Context) {
	items, err := h.itemRepo.List()
	if err != nil {
		h.logger.Error("Failed to list items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetItemByID handles GET /items/:id
func (h *itemHandler) GetItemByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	item, err := h.itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		h.logger.Error("Failed to get item", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		return
	}

	c.JSON(http.StatusOK, item)
}
