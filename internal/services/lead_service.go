package services

import (
	"fmt"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type LeadService struct {
	Repo     *repositories.LeadRepository
	Telegram *TelegramNotifier
}

func NewLeadService(repo *repositories.LeadRepository, telegram *TelegramNotifier) *LeadService {
	return &LeadService{Repo: repo, Telegram: telegram}
}

func (s *LeadService) Create(lead *models.Lead) error {
	if strings.TrimSpace(lead.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if lead.Source == "" {
		lead.Source = models.LeadSourceManual
	} else if _, err := models.ParseLeadSource(string(lead.Source)); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	// inquiry_id is set iff the lead came out of an inquiry conversion;
	// only LifecycleService mints inquiry-sourced leads
	if lead.Source == models.LeadSourceInquiry && lead.InquiryID == nil {
		return fmt.Errorf("%w: inquiry-sourced leads are created via conversion", ErrValidation)
	}
	if lead.InquiryID != nil && lead.Source != models.LeadSourceInquiry {
		return fmt.Errorf("%w: inquiry_id requires source \"inquiry\"", ErrValidation)
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	id, err := s.Repo.Create(lead)
	if err != nil {
		return err
	}
	lead.ID = int(id)
	return nil
}

func (s *LeadService) Update(lead *models.Lead) error {
	return s.Repo.Update(lead)
}

func (s *LeadService) GetByID(id int) (*models.Lead, error) {
	return s.Repo.GetByID(id)
}

func (s *LeadService) Delete(id int) error {
	return s.Repo.Delete(id)
}

func (s *LeadService) ListPaginated(limit, offset int) ([]*models.Lead, error) {
	return s.Repo.ListPaginated(limit, offset)
}

func (s *LeadService) ListMy(ownerID, limit, offset int) ([]*models.Lead, error) {
	return s.Repo.ListByOwner(ownerID, limit, offset)
}

// UpdateStatus validates enum membership only. Transitions within the
// vocabulary are unrestricted; the conversion guard lives in
// LifecycleService, not here.
func (s *LeadService) UpdateStatus(id int, to string) (*models.Lead, error) {
	status, err := models.ParseLeadStatus(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, fmt.Errorf("lead %w", ErrNotFound)
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	lead.Status = status
	return lead, nil
}

func (s *LeadService) AssignOwner(id, assigneeID int) error {
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if lead == nil {
		return fmt.Errorf("lead %w", ErrNotFound)
	}
	if err := s.Repo.UpdateOwner(id, assigneeID); err != nil {
		return err
	}
	s.Telegram.NotifyLeadAssigned(lead, assigneeID)
	return nil
}
