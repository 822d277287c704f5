package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type InvoiceService struct {
	db      *sql.DB
	Repo    *repositories.InvoiceRepository
	LogRepo *repositories.FinancialLogRepository
}

func NewInvoiceService(db *sql.DB, repo *repositories.InvoiceRepository, logRepo *repositories.FinancialLogRepository) *InvoiceService {
	return &InvoiceService{db: db, Repo: repo, LogRepo: logRepo}
}

func (s *InvoiceService) Create(inv *models.Invoice) error {
	if inv.ClientID == 0 {
		return fmt.Errorf("%w: client_id is required", ErrValidation)
	}
	if strings.TrimSpace(inv.Number) == "" {
		return fmt.Errorf("%w: number is required", ErrValidation)
	}
	if strings.TrimSpace(inv.Amount) == "" {
		return fmt.Errorf("%w: amount is required", ErrValidation)
	}
	if inv.Status == "" {
		inv.Status = models.InvoiceStatusDraft
	} else if _, err := models.ParseInvoiceStatus(string(inv.Status)); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	now := time.Now()
	if inv.IssuedAt.IsZero() {
		inv.IssuedAt = now
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}

	id, err := s.Repo.Create(inv)
	if err != nil {
		return err
	}
	inv.ID = int(id)
	return nil
}

// MarkPaid flips the invoice to "paid" and appends the income ledger entry
// in one transaction. Paying twice is a conflict.
func (s *InvoiceService) MarkPaid(id int) (*models.Invoice, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin payment: %w", err)
	}
	defer tx.Rollback()

	inv, err := s.Repo.GetByIDForUpdateTx(tx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("invoice %w", ErrNotFound)
	}
	if inv.Status == models.InvoiceStatusPaid {
		return nil, fmt.Errorf("%w: invoice already paid", ErrConflict)
	}

	now := time.Now()
	if err := s.Repo.MarkPaidTx(tx, id, now); err != nil {
		return nil, err
	}

	entry := &models.FinancialLog{
		EntryType:   models.EntryTypeIncome,
		Amount:      inv.Amount,
		Description: "invoice " + inv.Number + " paid",
		ProjectID:   inv.ProjectID,
		InvoiceID:   &inv.ID,
		CreatedAt:   now,
	}
	if _, err := s.LogRepo.CreateTx(tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment: %w", err)
	}

	inv.Status = models.InvoiceStatusPaid
	inv.PaidAt = &now
	return inv, nil
}

func (s *InvoiceService) UpdateStatus(id int, to string) (*models.Invoice, error) {
	status, err := models.ParseInvoiceStatus(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if status == models.InvoiceStatusPaid {
		// paid goes through MarkPaid so the ledger entry is written
		return s.MarkPaid(id)
	}
	inv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("invoice %w", ErrNotFound)
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	inv.Status = status
	return inv, nil
}

func (s *InvoiceService) GetByID(id int) (*models.Invoice, error) {
	return s.Repo.GetByID(id)
}

func (s *InvoiceService) List(clientID, limit, offset int) ([]*models.Invoice, error) {
	return s.Repo.List(clientID, limit, offset)
}
