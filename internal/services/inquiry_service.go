package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type InquiryService struct {
	Repo     *repositories.InquiryRepository
	Email    EmailService
	Telegram *TelegramNotifier
}

func NewInquiryService(repo *repositories.InquiryRepository, email EmailService, telegram *TelegramNotifier) *InquiryService {
	return &InquiryService{Repo: repo, Email: email, Telegram: telegram}
}

// Create registers a public submission and pings the office. Notification
// failures are logged by the notifiers and never fail the request.
func (s *InquiryService) Create(q *models.Inquiry) error {
	if strings.TrimSpace(q.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	q.Reference = uuid.NewString()
	q.Status = models.InquiryStatusNew
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}

	id, err := s.Repo.Create(q)
	if err != nil {
		return err
	}
	q.ID = int(id)

	if s.Email != nil {
		if err := s.Email.SendInquiryNotification(q); err != nil {
			log.Printf("inquiry %s: warning: notification email failed: %v", q.Reference, err)
		}
	}
	s.Telegram.NotifyNewInquiry(q)
	return nil
}

func (s *InquiryService) GetByID(id int) (*models.Inquiry, error) {
	return s.Repo.GetByID(id)
}

func (s *InquiryService) GetByReference(ref string) (*models.Inquiry, error) {
	return s.Repo.GetByReference(ref)
}

func (s *InquiryService) Update(q *models.Inquiry) error {
	return s.Repo.Update(q)
}

func (s *InquiryService) List(status string, limit, offset int) ([]*models.Inquiry, error) {
	return s.Repo.List(status, limit, offset)
}
