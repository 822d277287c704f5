package services

import (
	"fmt"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type InventoryService struct {
	Repo *repositories.InventoryRepository
}

func NewInventoryService(repo *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{Repo: repo}
}

func (s *InventoryService) Create(it *models.InventoryItem) error {
	if strings.TrimSpace(it.SKU) == "" {
		return fmt.Errorf("%w: sku is required", ErrValidation)
	}
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	existing, err := s.Repo.GetBySKU(it.SKU)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: sku already exists", ErrConflict)
	}
	now := time.Now()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	it.UpdatedAt = now

	id, err := s.Repo.Create(it)
	if err != nil {
		return err
	}
	it.ID = int(id)
	return nil
}

func (s *InventoryService) Update(it *models.InventoryItem) error {
	if it.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	it.UpdatedAt = time.Now()
	return s.Repo.Update(it)
}

func (s *InventoryService) GetByID(id int) (*models.InventoryItem, error) {
	return s.Repo.GetByID(id)
}

func (s *InventoryService) Delete(id int) error {
	return s.Repo.Delete(id)
}

func (s *InventoryService) List(limit, offset int) ([]*models.InventoryItem, error) {
	return s.Repo.List(limit, offset)
}
