package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secinstall/internal/models"
	"secinstall/internal/services"
)

type RateHandler struct {
	Service *services.RateService
}

func NewRateHandler(service *services.RateService) *RateHandler {
	return &RateHandler{Service: service}
}

type createRateRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	UnitPrice   string `json:"unit_price" binding:"required"`
	Active      *bool  `json:"active"`
}

func (h *RateHandler) Create(c *gin.Context) {
	var req createRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate := &models.Rate{
		ServiceType: req.ServiceType,
		Name:        req.Name,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		Active:      true,
	}
	if req.Active != nil {
		rate.Active = *req.Active
	}
	if err := h.Service.Create(rate); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rate)
}

func (h *RateHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rate, err := h.Service.GetByID(id)
	if err != nil || rate == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "rate not found"})
		return
	}
	c.JSON(http.StatusOK, rate)
}

func (h *RateHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	activeOnly := c.DefaultQuery("active", "") == "true"

	rates, err := h.Service.List(activeOnly, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rates"})
		return
	}
	c.JSON(http.StatusOK, rates)
}

type updateRateRequest struct {
	ServiceType *string `json:"service_type"`
	Name        *string `json:"name"`
	Unit        *string `json:"unit"`
	UnitPrice   *string `json:"unit_price"`
	Active      *bool   `json:"active"`
}

func (h *RateHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "rate not found"})
		return
	}

	var req updateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ServiceType != nil {
		current.ServiceType = *req.ServiceType
	}
	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Unit != nil {
		current.Unit = *req.Unit
	}
	if req.UnitPrice != nil {
		current.UnitPrice = *req.UnitPrice
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	if err := h.Service.Update(current); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

func (h *RateHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rate, err := h.Service.GetByID(id)
	if err != nil || rate == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "rate not found"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
