package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secinstall/internal/authz"
	"secinstall/internal/models"
	"secinstall/internal/services"
)

type LeadHandler struct {
	Service   *services.LeadService
	Lifecycle *services.LifecycleService
}

func NewLeadHandler(service *services.LeadService, lifecycle *services.LifecycleService) *LeadHandler {
	return &LeadHandler{Service: service, Lifecycle: lifecycle}
}

type createLeadRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	Industry       string `json:"industry"`
	ServiceType    string `json:"service_type"`
	Address        string `json:"address"`
	Notes          string `json:"notes"`
	Source         string `json:"source"`
	EstimatedValue string `json:"estimated_value"`
}

func (h *LeadHandler) Create(c *gin.Context) {
	userID, roleID := getUserAndRole(c)
	if !authz.CanManageClients(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req createLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// owner comes from the token, an incoming owner_id is ignored
	lead := &models.Lead{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		Industry:       req.Industry,
		ServiceType:    req.ServiceType,
		Address:        req.Address,
		Notes:          req.Notes,
		Source:         models.LeadSource(req.Source),
		EstimatedValue: req.EstimatedValue,
		OwnerID:        userID,
	}
	if err := h.Service.Create(lead); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID, roleID := getUserAndRole(c)

	lead, err := h.Service.GetByID(id)
	if err != nil || lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	// sales see their own leads, elevated roles and auditors see all
	if lead.OwnerID != userID && !authz.CanViewAll(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	userID, roleID := getUserAndRole(c)

	var (
		leads []*models.Lead
		err   error
	)
	if authz.CanViewAll(roleID) {
		leads, err = h.Service.ListPaginated(limit, offset)
	} else {
		leads, err = h.Service.ListMy(userID, limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

type updateLeadRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Company        *string `json:"company"`
	Industry       *string `json:"industry"`
	ServiceType    *string `json:"service_type"`
	Address        *string `json:"address"`
	Notes          *string `json:"notes"`
	EstimatedValue *string `json:"estimated_value"`
	Status         *string `json:"status"`
	OwnerID        *int    `json:"owner_id"`
}

func (h *LeadHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID, roleID := getUserAndRole(c)

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if current.OwnerID != userID && !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req updateLeadRequest
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
	if req.ServiceType != nil {
		current.ServiceType = *req.ServiceType
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.Notes != nil {
		current.Notes = *req.Notes
	}
	if req.EstimatedValue != nil {
		current.EstimatedValue = *req.EstimatedValue
	}
	if req.Status != nil {
		status, err := models.ParseLeadStatus(*req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		current.Status = status
	}
	// only elevated roles may reassign ownership
	if req.OwnerID != nil && authz.IsElevated(roleID) {
		current.OwnerID = *req.OwnerID
	}

	if err := h.Service.Update(current); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID, roleID := getUserAndRole(c)

	lead, err := h.Service.GetByID(id)
	if err != nil || lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if lead.OwnerID != userID && !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID, roleID := getUserAndRole(c)

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if current.OwnerID != userID && !authz.IsElevated(roleID) {
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

type assignLeadRequest struct {
	AssigneeID int `json:"assignee_id" binding:"required"`
}

func (h *LeadHandler) Assign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req assignLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.AssignOwner(id, req.AssigneeID); err != nil {
		respondServiceError(c, err)
		return
	}
	updated, _ := h.Service.GetByID(id)
	c.JSON(http.StatusOK, updated)
}

// ConvertFromInquiry turns an inquiry into a lead. The new lead is owned
// by the caller.
func (h *LeadHandler) ConvertFromInquiry(c *gin.Context) {
	inquiryID, ok := pathID(c, "inquiryId")
	if !ok {
		return
	}

	userID, roleID := getUserAndRole(c)
	if !authz.CanManageClients(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	lead, err := h.Lifecycle.ConvertInquiryToLead(inquiryID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}
