package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"secinstall/internal/models"
	"secinstall/internal/services"
)

type ExpenseHandler struct {
	Service *services.ExpenseService
}

func NewExpenseHandler(service *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: service}
}

type createExpenseRequest struct {
	ProjectID   *int       `json:"project_id"`
	Category    string     `json:"category" binding:"required"`
	Amount      string     `json:"amount" binding:"required"`
	Description string     `json:"description"`
	SpentAt     *time.Time `json:"spent_at"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := &models.Expense{
		ProjectID:   req.ProjectID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedBy:   userID,
	}
	if req.SpentAt != nil {
		e.SpentAt = *req.SpentAt
	}
	if err := h.Service.Create(e); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExpenseHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	e, err := h.Service.GetByID(id)
	if err != nil || e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	projectID, _ := strconv.Atoi(c.DefaultQuery("project_id", "0"))

	out, err := h.Service.List(projectID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list expenses"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateExpenseRequest struct {
	ProjectID   *int       `json:"project_id"`
	Category    *string    `json:"category"`
	Amount      *string    `json:"amount"`
	Description *string    `json:"description"`
	SpentAt     *time.Time `json:"spent_at"`
}

// Patch edits the expense record itself. The ledger entry written at
// creation is append-only and is not touched here.
func (h *ExpenseHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}

	var req updateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ProjectID != nil {
		current.ProjectID = req.ProjectID
	}
	if req.Category != nil {
		current.Category = *req.Category
	}
	if req.Amount != nil {
		current.Amount = *req.Amount
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.SpentAt != nil {
		current.SpentAt = *req.SpentAt
	}

	if err := h.Service.Update(current); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	e, err := h.Service.GetByID(id)
	if err != nil || e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListLogs serves the append-only financial ledger.
func (h *ExpenseHandler) ListLogs(c *gin.Context) {
	limit, offset := pagination(c)
	out, err := h.Service.ListLogs(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list financial logs"})
		return
	}
	c.JSON(http.StatusOK, out)
}
