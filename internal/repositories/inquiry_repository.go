package repositories

import (
	"database/sql"
	"fmt"

	"secinstall/internal/models"
)

type InquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

const inquiryColumns = `id, reference, name, email, phone, company, service_type, address, message, status, converted_lead_id, created_at`

func scanInquiry(row interface{ Scan(...any) error }) (*models.Inquiry, error) {
	var q models.Inquiry
	err := row.Scan(&q.ID, &q.Reference, &q.Name, &q.Email, &q.Phone, &q.Company,
		&q.ServiceType, &q.Address, &q.Message, &q.Status, &q.ConvertedLeadID, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *InquiryRepository) Create(q *models.Inquiry) (int64, error) {
	const query = `
		INSERT INTO inquiries (reference, name, email, phone, company, service_type, address, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(query, q.Reference, q.Name, q.Email, q.Phone, q.Company,
		q.ServiceType, q.Address, q.Message, q.Status, q.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create inquiry: %w", err)
	}
	return id, nil
}

func (r *InquiryRepository) GetByID(id int) (*models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id=$1`
	q, err := scanInquiry(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return q, nil
}

func (r *InquiryRepository) GetByReference(ref string) (*models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE reference=$1`
	q, err := scanInquiry(r.db.QueryRow(query, ref))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get inquiry by reference: %w", err)
	}
	return q, nil
}

// GetByIDForUpdateTx locks the inquiry row for the duration of the
// conversion transaction.
func (r *InquiryRepository) GetByIDForUpdateTx(tx *sql.Tx, id int) (*models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id=$1 FOR UPDATE`
	q, err := scanInquiry(tx.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("lock inquiry: %w", err)
	}
	return q, nil
}

func (r *InquiryRepository) MarkConvertedTx(tx *sql.Tx, id, leadID int) error {
	const query = `UPDATE inquiries SET status=$1, converted_lead_id=$2 WHERE id=$3`
	if _, err := tx.Exec(query, models.InquiryStatusConverted, leadID, id); err != nil {
		return fmt.Errorf("mark inquiry converted: %w", err)
	}
	return nil
}

func (r *InquiryRepository) Update(q *models.Inquiry) error {
	const query = `
		UPDATE inquiries
		SET name=$1, email=$2, phone=$3, company=$4, service_type=$5, address=$6, message=$7, status=$8
		WHERE id=$9
	`
	if _, err := r.db.Exec(query, q.Name, q.Email, q.Phone, q.Company,
		q.ServiceType, q.Address, q.Message, q.Status, q.ID); err != nil {
		return fmt.Errorf("update inquiry: %w", err)
	}
	return nil
}

func (r *InquiryRepository) List(status string, limit, offset int) ([]*models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	args := []any{}
	if status != "" {
		query += ` WHERE status=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var out []*models.Inquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
