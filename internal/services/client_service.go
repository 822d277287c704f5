package services

import (
	"fmt"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type ClientService struct {
	Repo *repositories.ClientRepository
}

func NewClientService(repo *repositories.ClientRepository) *ClientService {
	return &ClientService{Repo: repo}
}

func (s *ClientService) Create(client *models.Client) (int64, error) {
	if strings.TrimSpace(client.Name) == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if client.Status == "" {
		client.Status = models.ClientStatusPotential
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}
	return s.Repo.Create(client)
}

func (s *ClientService) Update(client *models.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return s.Repo.Update(client)
}

func (s *ClientService) GetByID(id int) (*models.Client, error) {
	return s.Repo.GetByID(id)
}

func (s *ClientService) Delete(id int) error {
	return s.Repo.Delete(id)
}

func (s *ClientService) List(limit, offset int) ([]*models.Client, error) {
	return s.Repo.List(limit, offset)
}

func (s *ClientService) FindByName(name string) ([]*models.Client, error) {
	return s.Repo.FindByName(name)
}

func (s *ClientService) UpdateStatus(id int, to string) (*models.Client, error) {
	status, err := models.ParseClientStatus(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	client, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %w", ErrNotFound)
	}
	client.Status = status
	if err := s.Repo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}
