package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

// LifecycleService owns the Inquiry→Lead and Lead→Client conversions.
// Each conversion is one transaction: the new row and the status flip on
// the source row commit together or not at all. The source row is locked
// FOR UPDATE, so of two concurrent conversions the second one observes the
// converted state and fails with a conflict.
type LifecycleService struct {
	db          *sql.DB
	InquiryRepo *repositories.InquiryRepository
	LeadRepo    *repositories.LeadRepository
	ClientRepo  *repositories.ClientRepository
}

func NewLifecycleService(db *sql.DB, inquiryRepo *repositories.InquiryRepository, leadRepo *repositories.LeadRepository, clientRepo *repositories.ClientRepository) *LifecycleService {
	return &LifecycleService{db: db, InquiryRepo: inquiryRepo, LeadRepo: leadRepo, ClientRepo: clientRepo}
}

// ConvertInquiryToLead creates a lead from an inquiry, copying the identity
// fields, and marks the inquiry converted with a back-reference to the new
// lead. An inquiry converts at most once.
func (s *LifecycleService) ConvertInquiryToLead(inquiryID, ownerID int) (*models.Lead, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin conversion: %w", err)
	}
	defer tx.Rollback()

	inq, err := s.InquiryRepo.GetByIDForUpdateTx(tx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inq == nil {
		return nil, fmt.Errorf("inquiry %w", ErrNotFound)
	}
	if inq.ConvertedLeadID != nil {
		return nil, fmt.Errorf("inquiry %w", ErrAlreadyConverted)
	}

	lead := &models.Lead{
		Name:        inq.Name,
		Email:       inq.Email,
		Phone:       inq.Phone,
		Company:     inq.Company,
		ServiceType: inq.ServiceType,
		Address:     inq.Address,
		Source:      models.LeadSourceInquiry,
		InquiryID:   &inq.ID,
		Status:      models.LeadStatusNew,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}
	id, err := s.LeadRepo.CreateTx(tx, lead)
	if err != nil {
		return nil, translateConflict(err, "inquiry")
	}
	lead.ID = int(id)

	if err := s.InquiryRepo.MarkConvertedTx(tx, inq.ID, lead.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit conversion: %w", err)
	}
	return lead, nil
}

// ConvertLeadToClient creates a client from a lead, copying the contact
// fields, and flips the lead to "converted". A lead converts at most once;
// the unique index on clients.lead_id backs this at the schema level.
func (s *LifecycleService) ConvertLeadToClient(leadID int) (*models.Client, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin conversion: %w", err)
	}
	defer tx.Rollback()

	lead, err := s.LeadRepo.GetByIDForUpdateTx(tx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, fmt.Errorf("lead %w", ErrNotFound)
	}
	if lead.Status == models.LeadStatusConverted {
		return nil, fmt.Errorf("lead %w", ErrAlreadyConverted)
	}

	client := &models.Client{
		LeadID:    &lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Company:   lead.Company,
		Industry:  lead.Industry,
		Address:   lead.Address,
		Notes:     lead.Notes,
		Status:    models.ClientStatusPotential,
		CreatedAt: time.Now(),
	}
	id, err := s.ClientRepo.CreateTx(tx, client)
	if err != nil {
		return nil, translateConflict(err, "lead")
	}
	client.ID = int(id)

	if err := s.LeadRepo.UpdateStatusTx(tx, lead.ID, models.LeadStatusConverted); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit conversion: %w", err)
	}
	return client, nil
}

// translateConflict maps a unique-constraint violation (a concurrent
// conversion won the race) onto the conflict error.
func translateConflict(err error, entity string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%s %w", entity, ErrAlreadyConverted)
	}
	return err
}
