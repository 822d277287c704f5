package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

type ExpenseService struct {
	db      *sql.DB
	Repo    *repositories.ExpenseRepository
	LogRepo *repositories.FinancialLogRepository
}

func NewExpenseService(db *sql.DB, repo *repositories.ExpenseRepository, logRepo *repositories.FinancialLogRepository) *ExpenseService {
	return &ExpenseService{db: db, Repo: repo, LogRepo: logRepo}
}

// Create records the expense and its ledger entry in one transaction.
func (s *ExpenseService) Create(e *models.Expense) error {
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if strings.TrimSpace(e.Amount) == "" {
		return fmt.Errorf("%w: amount is required", ErrValidation)
	}
	now := time.Now()
	if e.SpentAt.IsZero() {
		e.SpentAt = now
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin expense: %w", err)
	}
	defer tx.Rollback()

	id, err := s.Repo.CreateTx(tx, e)
	if err != nil {
		return err
	}
	e.ID = int(id)

	entry := &models.FinancialLog{
		EntryType:   models.EntryTypeExpense,
		Amount:      e.Amount,
		Description: e.Category + ": " + e.Description,
		ProjectID:   e.ProjectID,
		ExpenseID:   &e.ID,
		CreatedAt:   now,
	}
	if _, err := s.LogRepo.CreateTx(tx, entry); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit expense: %w", err)
	}
	return nil
}

func (s *ExpenseService) Update(e *models.Expense) error {
	return s.Repo.Update(e)
}

func (s *ExpenseService) GetByID(id int) (*models.Expense, error) {
	return s.Repo.GetByID(id)
}

func (s *ExpenseService) Delete(id int) error {
	return s.Repo.Delete(id)
}

func (s *ExpenseService) List(projectID, limit, offset int) ([]*models.Expense, error) {
	return s.Repo.List(projectID, limit, offset)
}

func (s *ExpenseService) ListLogs(limit, offset int) ([]*models.FinancialLog, error) {
	return s.LogRepo.List(limit, offset)
}
