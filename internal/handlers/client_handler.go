package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"secinstall/internal/authz"
	"secinstall/internal/models"
	"secinstall/internal/services"
)

type ClientHandler struct {
	Service   *services.ClientService
	Lifecycle *services.LifecycleService
}

func NewClientHandler(service *services.ClientService, lifecycle *services.LifecycleService) *ClientHandler {
	return &ClientHandler{Service: service, Lifecycle: lifecycle}
}

type createClientRequest struct {
	Name           string     `json:"name" binding:"required"`
	Email          string     `json:"email" binding:"omitempty,email"`
	Phone          string     `json:"phone"`
	Company        string     `json:"company"`
	Industry       string     `json:"industry"`
	Address        string     `json:"address"`
	Notes          string     `json:"notes"`
	Status         string     `json:"status"`
	ContractNumber string     `json:"contract_number"`
	ContractDate   *time.Time `json:"contract_signed_at"`
}

// Create registers a client directly, bypassing the lead stage.
func (h *ClientHandler) Create(c *gin.Context) {
	_, roleID := getUserAndRole(c)
	if !authz.CanManageClients(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != "" {
		if _, err := models.ParseClientStatus(req.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	client := &models.Client{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Company:          req.Company,
		Industry:         req.Industry,
		Address:          req.Address,
		Notes:            req.Notes,
		Status:           models.ClientStatus(req.Status),
		ContractNumber:   req.ContractNumber,
		ContractSignedAt: req.ContractDate,
	}
	id, err := h.Service.Create(client)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	client.ID = int(id)
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	client, err := h.Service.GetByID(id)
	if err != nil || client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	if name := c.Query("name"); name != "" {
		clients, err := h.Service.FindByName(name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search clients"})
			return
		}
		c.JSON(http.StatusOK, clients)
		return
	}
	clients, err := h.Service.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

type updateClientRequest struct {
	Name           *string    `json:"name"`
	Email          *string    `json:"email"`
	Phone          *string    `json:"phone"`
	Company        *string    `json:"company"`
	Industry       *string    `json:"industry"`
	Address        *string    `json:"address"`
	Notes          *string    `json:"notes"`
	Status         *string    `json:"status"`
	ContractNumber *string    `json:"contract_number"`
	ContractDate   *time.Time `json:"contract_signed_at"`
}

func (h *ClientHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.CanManageClients(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}

	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Phone != nil {
		current.Phone = *req.Phone
	}
	if req.Company != nil {
		current.Company = *req.Company
	}
	if req.Industry != nil {
		current.Industry = *req.Industry
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.Notes != nil {
		current.Notes = *req.Notes
	}
	if req.Status != nil {
		status, err := models.ParseClientStatus(*req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		current.Status = status
	}
	if req.ContractNumber != nil {
		current.ContractNumber = *req.ContractNumber
	}
	if req.ContractDate != nil {
		current.ContractSignedAt = req.ContractDate
	}

	if err := h.Service.Update(current); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

func (h *ClientHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.CanManageClients(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Service.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	client, err := h.Service.GetByID(id)
	if err != nil || client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ConvertFromLead turns a lead into a client. A lead converts at most once.
func (h *ClientHandler) ConvertFromLead(c *gin.Context) {
	leadID, ok := pathID(c, "leadId")
	if !ok {
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.CanManageClients(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	client, err := h.Lifecycle.ConvertLeadToClient(leadID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}
