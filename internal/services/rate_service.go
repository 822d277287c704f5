package services

import (
	"fmt"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type RateService struct {
	Repo *repositories.RateRepository
}

func NewRateService(repo *repositories.RateRepository) *RateService {
	return &RateService{Repo: repo}
}

func (s *RateService) Create(rt *models.Rate) error {
	if strings.TrimSpace(rt.ServiceType) == "" {
		return fmt.Errorf("%w: service_type is required", ErrValidation)
	}
	if strings.TrimSpace(rt.UnitPrice) == "" {
		return fmt.Errorf("%w: unit_price is required", ErrValidation)
	}
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = time.Now()
	}

	id, err := s.Repo.Create(rt)
	if err != nil {
		return err
	}
	rt.ID = int(id)
	return nil
}

func (s *RateService) Update(rt *models.Rate) error {
	return s.Repo.Update(rt)
}

func (s *RateService) GetByID(id int) (*models.Rate, error) {
	return s.Repo.GetByID(id)
}

func (s *RateService) Delete(id int) error {
	return s.Repo.Delete(id)
}

func (s *RateService) List(activeOnly bool, limit, offset int) ([]*models.Rate, error) {
	return s.Repo.List(activeOnly, limit, offset)
}
