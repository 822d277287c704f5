package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secinstall/internal/models"
	"secinstall/internal/services"
)

type InventoryHandler struct {
	Service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{Service: service}
}

type createInventoryRequest struct {
	SKU          string `json:"sku" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	UnitCost     string `json:"unit_cost"`
	ReorderLevel int    `json:"reorder_level"`
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req createInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &models.InventoryItem{
		SKU:          req.SKU,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		ReorderLevel: req.ReorderLevel,
	}
	if err := h.Service.Create(item); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := h.Service.GetByID(id)
	if err != nil || item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	items, err := h.Service.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list inventory"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type updateInventoryRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	Quantity     *int    `json:"quantity"`
	UnitCost     *string `json:"unit_cost"`
	ReorderLevel *int    `json:"reorder_level"`
}

func (h *InventoryHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
		return
	}

	var req updateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Category != nil {
		current.Category = *req.Category
	}
	if req.Quantity != nil {
		current.Quantity = *req.Quantity
	}
	if req.UnitCost != nil {
		current.UnitCost = *req.UnitCost
	}
	if req.ReorderLevel != nil {
		current.ReorderLevel = *req.ReorderLevel
	}

	if err := h.Service.Update(current); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := h.Service.GetByID(id)
	if err != nil || item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
