package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secinstall/internal/models"
	"secinstall/internal/services"
)

type InquiryHandler struct {
	Service *services.InquiryService
}

func NewInquiryHandler(service *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{Service: service}
}

type createInquiryRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ServiceType string `json:"service_type" binding:"required"`
	Address     string `json:"address"`
	Message     string `json:"message"`
}

// Create handles the public quote/appointment form. No session required.
func (h *InquiryHandler) Create(c *gin.Context) {
	var req createInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := &models.Inquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ServiceType: req.ServiceType,
		Address:     req.Address,
		Message:     req.Message,
	}
	if err := h.Service.Create(q); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

func (h *InquiryHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, err := h.Service.GetByID(id)
	if err != nil || q == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// GetByReference looks an inquiry up by its public reference code, the
// one handed back to the submitter.
func (h *InquiryHandler) GetByReference(c *gin.Context) {
	ref := c.Param("reference")
	q, err := h.Service.GetByReference(ref)
	if err != nil || q == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *InquiryHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	status := c.Query("status")
	if status != "" {
		if _, err := models.ParseInquiryStatus(status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	out, err := h.Service.List(status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list inquiries"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateInquiryRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Company     *string `json:"company"`
	ServiceType *string `json:"service_type"`
	Address     *string `json:"address"`
	Message     *string `json:"message"`
	Status      *string `json:"status"`
}

// Patch applies a partial update. The converted status and back-reference
// are owned by the conversion endpoint and cannot be set here.
func (h *InquiryHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		return
	}

	var req updateInquiryRequest
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
	if req.ServiceType != nil {
		current.ServiceType = *req.ServiceType
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.Message != nil {
		current.Message = *req.Message
	}
	if req.Status != nil {
		status, err := models.ParseInquiryStatus(*req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if status == models.InquiryStatusConverted && current.Status != models.InquiryStatusConverted {
			c.JSON(http.StatusBadRequest, gin.H{"error": "use the conversion endpoint to convert an inquiry"})
			return
		}
		current.Status = status
	}

	if err := h.Service.Update(current); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}
