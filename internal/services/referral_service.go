package services

import (
	"fmt"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type ReferralService struct {
	Repo *repositories.ReferralRepository
}

func NewReferralService(repo *repositories.ReferralRepository) *ReferralService {
	return &ReferralService{Repo: repo}
}

func (s *ReferralService) Create(rf *models.Referral) error {
	if rf.ReferrerClientID == 0 {
		return fmt.Errorf("%w: referrer_client_id is required", ErrValidation)
	}
	if strings.TrimSpace(rf.ReferredName) == "" {
		return fmt.Errorf("%w: referred_name is required", ErrValidation)
	}
	if rf.Status == "" {
		rf.Status = models.ReferralStatusPending
	}
	if rf.CreatedAt.IsZero() {
		rf.CreatedAt = time.Now()
	}

	id, err := s.Repo.Create(rf)
	if err != nil {
		return err
	}
	rf.ID = int(id)
	return nil
}

func (s *ReferralService) Update(rf *models.Referral) error {
	return s.Repo.Update(rf)
}

func (s *ReferralService) GetByID(id int) (*models.Referral, error) {
	return s.Repo.GetByID(id)
}

func (s *ReferralService) Delete(id int) error {
	return s.Repo.Delete(id)
}

func (s *ReferralService) List(limit, offset int) ([]*models.Referral, error) {
	return s.Repo.List(limit, offset)
}

func (s *ReferralService) UpdateStatus(id int, to string) (*models.Referral, error) {
	status, err := models.ParseReferralStatus(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	rf, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rf == nil {
		return nil, fmt.Errorf("referral %w", ErrNotFound)
	}
	rf.Status = status
	if err := s.Repo.Update(rf); err != nil {
		return nil, err
	}
	return rf, nil
}
