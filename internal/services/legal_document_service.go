package services

import (
	"fmt"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type LegalDocumentService struct {
	Repo *repositories.LegalDocumentRepository
}

func NewLegalDocumentService(repo *repositories.LegalDocumentRepository) *LegalDocumentService {
	return &LegalDocumentService{Repo: repo}
}

func (s *LegalDocumentService) Create(d *models.LegalDocument) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	id, err := s.Repo.Create(d)
	if err != nil {
		return err
	}
	d.ID = int(id)
	return nil
}

func (s *LegalDocumentService) Update(d *models.LegalDocument) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	d.UpdatedAt = time.Now()
	return s.Repo.Update(d)
}

func (s *LegalDocumentService) GetByID(id int) (*models.LegalDocument, error) {
	return s.Repo.GetByID(id)
}

func (s *LegalDocumentService) Delete(id int) error {
	return s.Repo.Delete(id)
}

func (s *LegalDocumentService) List(clientID, limit, offset int) ([]*models.LegalDocument, error) {
	return s.Repo.List(clientID, limit, offset)
}
