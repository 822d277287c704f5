package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"secinstall/internal/models"
	"secinstall/internal/services"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
}

func NewInvoiceHandler(service *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: service}
}

type createInvoiceRequest struct {
	ClientID  int        `json:"client_id" binding:"required"`
	ProjectID *int       `json:"project_id"`
	Number    string     `json:"number" binding:"required"`
	Amount    string     `json:"amount" binding:"required"`
	Status    string     `json:"status"`
	IssuedAt  *time.Time `json:"issued_at"`
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv := &models.Invoice{
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		Number:    req.Number,
		Amount:    req.Amount,
		Status:    models.InvoiceStatus(req.Status),
	}
	if req.IssuedAt != nil {
		inv.IssuedAt = *req.IssuedAt
	}
	if err := h.Service.Create(inv); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	inv, err := h.Service.GetByID(id)
	if err != nil || inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	clientID, _ := strconv.Atoi(c.DefaultQuery("client_id", "0"))

	out, err := h.Service.List(clientID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list invoices"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inv, err := h.Service.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Pay settles the invoice and writes the income ledger entry.
func (h *InvoiceHandler) Pay(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	inv, err := h.Service.MarkPaid(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}
