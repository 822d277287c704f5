package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secinstall/internal/authz"
	"secinstall/internal/models"
	"secinstall/internal/services"
)

type ProjectHandler struct {
	Service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: service}
}

type createProjectRequest struct {
	ClientID     *int   `json:"client_id"`
	LeadID       *int   `json:"lead_id"`
	ProjectName  string `json:"project_name" binding:"required"`
	ServiceType  string `json:"service_type" binding:"required"`
	TechnicianID int    `json:"technician_id"`
	Status       string `json:"status"`
	Cost         string `json:"cost"`
	WorkNotes    string `json:"work_notes"`
}

// Create opens a project. At least one of client_id/lead_id must be set;
// the service rejects the request before any write otherwise.
func (h *ProjectHandler) Create(c *gin.Context) {
	_, roleID := getUserAndRole(c)
	if !authz.CanManageProjects(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := &models.Project{
		ClientID:     req.ClientID,
		LeadID:       req.LeadID,
		ProjectName:  req.ProjectName,
		ServiceType:  req.ServiceType,
		TechnicianID: req.TechnicianID,
		Status:       models.ProjectStatus(req.Status),
		Cost:         req.Cost,
		WorkNotes:    req.WorkNotes,
	}
	if err := h.Service.Create(project); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.Service.GetByID(id)
	if err != nil || p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	userID, roleID := getUserAndRole(c)

	// technicians see their own schedule
	if roleID == authz.RoleTechnician {
		projects, err := h.Service.ListByTechnician(userID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
			return
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	projects, err := h.Service.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

type updateProjectRequest struct {
	ClientID     *int    `json:"client_id"`
	LeadID       *int    `json:"lead_id"`
	ProjectName  *string `json:"project_name"`
	ServiceType  *string `json:"service_type"`
	TechnicianID *int    `json:"technician_id"`
	Status       *string `json:"status"`
	Cost         *string `json:"cost"`
	WorkNotes    *string `json:"work_notes"`
}

// Patch applies a partial update. If either reference field is in the
// payload the mandatory-link invariant is re-validated on the result.
func (h *ProjectHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID, roleID := getUserAndRole(c)

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	// the assigned technician may update status and work notes; everyone
	// else needs manage rights
	if !authz.CanManageProjects(roleID) && !(roleID == authz.RoleTechnician && current.TechnicianID == userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ClientID != nil {
		current.ClientID = req.ClientID
	}
	if req.LeadID != nil {
		current.LeadID = req.LeadID
	}
	if req.ProjectName != nil {
		current.ProjectName = *req.ProjectName
	}
	if req.ServiceType != nil {
		current.ServiceType = *req.ServiceType
	}
	if req.TechnicianID != nil {
		current.TechnicianID = *req.TechnicianID
	}
	if req.Status != nil {
		status, err := models.ParseProjectStatus(*req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		current.Status = status
	}
	if req.Cost != nil {
		current.Cost = *req.Cost
	}
	if req.WorkNotes != nil {
		current.WorkNotes = *req.WorkNotes
	}

	if err := h.Service.Update(current); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

// UpdateStatus moves the project between schedule states. The assigned
// technician may flip status without manage rights.
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID, roleID := getUserAndRole(c)

	current, err := h.Service.GetByID(id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if !authz.CanManageProjects(roleID) && !(roleID == authz.RoleTechnician && current.TechnicianID == userID) {
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

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	p, err := h.Service.GetByID(id)
	if err != nil || p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
