package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"secinstall/internal/models"
	"secinstall/internal/services"
)

type LegalDocumentHandler struct {
	Service *services.LegalDocumentService
}

func NewLegalDocumentHandler(service *services.LegalDocumentService) *LegalDocumentHandler {
	return &LegalDocumentHandler{Service: service}
}

type createLegalDocumentRequest struct {
	Title    string `json:"title" binding:"required"`
	DocType  string `json:"doc_type"`
	Body     string `json:"body"`
	ClientID *int   `json:"client_id"`
}

func (h *LegalDocumentHandler) Create(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req createLegalDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc := &models.LegalDocument{
		Title:     req.Title,
		DocType:   req.DocType,
		Body:      req.Body,
		ClientID:  req.ClientID,
		CreatedBy: userID,
	}
	if err := h.Service.Create(doc); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *LegalDocumentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.Service.GetByID(id)
	if err != nil || doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *LegalDocumentHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	clientID, _ := strconv.Atoi(c.DefaultQuery("client_id", "0"))

	docs, err := h.Service.List(clientID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

type updateLegalDocumentRequest struct {
	Title    *string `json:"title"`
	DocType  *string `json:"doc_type"`
	Body     *string `json:"body"`
	ClientID *int    `json:"client_id"`
}

func (h *LegalDocumentHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	var req updateLegalDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.DocType != nil {
		current.DocType = *req.DocType
	}
	if req.Body != nil {
		current.Body = *req.Body
	}
	if req.ClientID != nil {
		current.ClientID = req.ClientID
	}

	if err := h.Service.Update(current); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

func (h *LegalDocumentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.Service.GetByID(id)
	if err != nil || doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
