package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secinstall/internal/models"
	"secinstall/internal/services"
)

type ReferralHandler struct {
	Service *services.ReferralService
}

func NewReferralHandler(service *services.ReferralService) *ReferralHandler {
	return &ReferralHandler{Service: service}
}

type createReferralRequest struct {
	ReferrerClientID int    `json:"referrer_client_id" binding:"required"`
	LeadID           *int   `json:"lead_id"`
	ReferredName     string `json:"referred_name" binding:"required"`
	ReferredPhone    string `json:"referred_phone"`
	RewardAmount     string `json:"reward_amount"`
}

func (h *ReferralHandler) Create(c *gin.Context) {
	var req createReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rf := &models.Referral{
		ReferrerClientID: req.ReferrerClientID,
		LeadID:           req.LeadID,
		ReferredName:     req.ReferredName,
		ReferredPhone:    req.ReferredPhone,
		RewardAmount:     req.RewardAmount,
	}
	if err := h.Service.Create(rf); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rf)
}

func (h *ReferralHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rf, err := h.Service.GetByID(id)
	if err != nil || rf == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "referral not found"})
		return
	}
	c.JSON(http.StatusOK, rf)
}

func (h *ReferralHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	out, err := h.Service.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list referrals"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateReferralRequest struct {
	LeadID        *int    `json:"lead_id"`
	ReferredName  *string `json:"referred_name"`
	ReferredPhone *string `json:"referred_phone"`
	RewardAmount  *string `json:"reward_amount"`
	Status        *string `json:"status"`
}

func (h *ReferralHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "referral not found"})
		return
	}

	var req updateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.LeadID != nil {
		current.LeadID = req.LeadID
	}
	if req.ReferredName != nil {
		current.ReferredName = *req.ReferredName
	}
	if req.ReferredPhone != nil {
		current.ReferredPhone = *req.ReferredPhone
	}
	if req.RewardAmount != nil {
		current.RewardAmount = *req.RewardAmount
	}
	if req.Status != nil {
		status, err := models.ParseReferralStatus(*req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

func (h *ReferralHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
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

func (h *ReferralHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rf, err := h.Service.GetByID(id)
	if err != nil || rf == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "referral not found"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
