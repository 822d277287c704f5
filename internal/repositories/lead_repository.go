package repositories

import (
	"database/sql"
	"fmt"
	"log"

	"secinstall/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

const leadColumns = `id, name, email, phone, company, industry, service_type, address, notes, source, inquiry_id, status, estimated_value, owner_id, created_at`

func scanLead(row interface{ Scan(...any) error }) (*models.Lead, error) {
	var l models.Lead
	err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Industry,
		&l.ServiceType, &l.Address, &l.Notes, &l.Source, &l.InquiryID, &l.Status,
		&l.EstimatedValue, &l.OwnerID, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepository) Create(lead *models.Lead) (int64, error) {
	return insertLead(r.db, lead)
}

// CreateTx inserts inside an existing conversion transaction.
func (r *LeadRepository) CreateTx(tx *sql.Tx, lead *models.Lead) (int64, error) {
	return insertLead(tx, lead)
}

type execQueryer interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func insertLead(q execQueryer, lead *models.Lead) (int64, error) {
	const query = `
		INSERT INTO leads (name, email, phone, company, industry, service_type, address, notes, source, inquiry_id, status, estimated_value, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	var id int64
	err := q.QueryRow(query, lead.Name, lead.Email, lead.Phone, lead.Company, lead.Industry,
		lead.ServiceType, lead.Address, lead.Notes, lead.Source, lead.InquiryID, lead.Status,
		lead.EstimatedValue, lead.OwnerID, lead.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create lead: %w", err)
	}
	return id, nil
}

func (r *LeadRepository) Update(lead *models.Lead) error {
	const query = `
		UPDATE leads
		SET name=$1, email=$2, phone=$3, company=$4, industry=$5, service_type=$6, address=$7, notes=$8, status=$9, estimated_value=$10, owner_id=$11
		WHERE id=$12
	`
	if _, err := r.db.Exec(query, lead.Name, lead.Email, lead.Phone, lead.Company, lead.Industry,
		lead.ServiceType, lead.Address, lead.Notes, lead.Status, lead.EstimatedValue,
		lead.OwnerID, lead.ID); err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) GetByID(id int) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id=$1`
	lead, err := scanLead(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

// GetByIDForUpdateTx locks the lead row so concurrent conversions of the
// same lead serialize.
func (r *LeadRepository) GetByIDForUpdateTx(tx *sql.Tx, id int) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id=$1 FOR UPDATE`
	lead, err := scanLead(tx.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("lock lead: %w", err)
	}
	return lead, nil
}

func (r *LeadRepository) UpdateStatus(id int, status models.LeadStatus) error {
	const query = `UPDATE leads SET status=$1 WHERE id=$2`
	if _, err := r.db.Exec(query, status, id); err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	return nil
}

func (r *LeadRepository) UpdateStatusTx(tx *sql.Tx, id int, status models.LeadStatus) error {
	const query = `UPDATE leads SET status=$1 WHERE id=$2`
	if _, err := tx.Exec(query, status, id); err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	return nil
}

func (r *LeadRepository) UpdateOwner(id, ownerID int) error {
	const query = `UPDATE leads SET owner_id=$1 WHERE id=$2`
	if _, err := r.db.Exec(query, ownerID, id); err != nil {
		return fmt.Errorf("assign lead owner: %w", err)
	}
	return nil
}

func (r *LeadRepository) Delete(id int) error {
	const query = `DELETE FROM leads WHERE id=$1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) ListPaginated(limit, offset int) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryLeads(query, limit, offset)
}

func (r *LeadRepository) ListByOwner(ownerID, limit, offset int) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE owner_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryLeads(query, ownerID, limit, offset)
}

func (r *LeadRepository) queryLeads(query string, args ...any) ([]*models.Lead, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
