package services

import (
	"fmt"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type ProjectService struct {
	Repo *repositories.ProjectRepository
}

func NewProjectService(repo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{Repo: repo}
}

// validateProject enforces the mandatory-link invariant: a project must reference
// a client, a lead, or both. Checked before any write, on create and on
// every edit that touches the reference fields.
func validateProject(p *models.Project) error {
	if strings.TrimSpace(p.ProjectName) == "" {
		return fmt.Errorf("%w: project_name is required", ErrValidation)
	}
	if strings.TrimSpace(p.ServiceType) == "" {
		return fmt.Errorf("%w: service_type is required", ErrValidation)
	}
	if p.ClientID == nil && p.LeadID == nil {
		return fmt.Errorf("%w: client_id or lead_id is required", ErrValidation)
	}
	return nil
}

func (s *ProjectService) Create(p *models.Project) error {
	if err := validateProject(p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusScheduled
	} else if _, err := models.ParseProjectStatus(string(p.Status)); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	id, err := s.Repo.Create(p)
	if err != nil {
		return err
	}
	p.ID = int(id)
	return nil
}

func (s *ProjectService) Update(p *models.Project) error {
	if err := validateProject(p); err != nil {
		return err
	}
	if _, err := models.ParseProjectStatus(string(p.Status)); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	p.UpdatedAt = time.Now()
	return s.Repo.Update(p)
}

func (s *ProjectService) GetByID(id int) (*models.Project, error) {
	return s.Repo.GetByID(id)
}

func (s *ProjectService) Delete(id int) error {
	return s.Repo.Delete(id)
}

func (s *ProjectService) List(limit, offset int) ([]*models.Project, error) {
	return s.Repo.List(limit, offset)
}

func (s *ProjectService) ListByClient(clientID, limit, offset int) ([]*models.Project, error) {
	return s.Repo.ListByClient(clientID, limit, offset)
}

func (s *ProjectService) ListByTechnician(technicianID, limit, offset int) ([]*models.Project, error) {
	return s.Repo.ListByTechnician(technicianID, limit, offset)
}

func (s *ProjectService) UpdateStatus(id int, to string) (*models.Project, error) {
	status, err := models.ParseProjectStatus(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("project %w", ErrNotFound)
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}
