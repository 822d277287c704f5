package repositories

import (
	"database/sql"
	"fmt"

	"secinstall/internal/models"
)

type LegalDocumentRepository struct {
	db *sql.DB
}

func NewLegalDocumentRepository(db *sql.DB) *LegalDocumentRepository {
	return &LegalDocumentRepository{db: db}
}

const legalDocColumns = `id, title, doc_type, body, client_id, created_by, created_at, updated_at`

func scanLegalDocument(row interface{ Scan(...any) error }) (*models.LegalDocument, error) {
	var d models.LegalDocument
	err := row.Scan(&d.ID, &d.Title, &d.DocType, &d.Body, &d.ClientID,
		&d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *LegalDocumentRepository) Create(d *models.LegalDocument) (int64, error) {
	const query = `
		INSERT INTO legal_documents (title, doc_type, body, client_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query, d.Title, d.DocType, d.Body, d.ClientID,
		d.CreatedBy, d.CreatedAt, d.UpdatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create legal document: %w", err)
	}
	return id, nil
}

func (r *LegalDocumentRepository) Update(d *models.LegalDocument) error {
	const query = `
		UPDATE legal_documents SET title=$1, doc_type=$2, body=$3, client_id=$4, updated_at=$5 WHERE id=$6
	`
	if _, err := r.db.Exec(query, d.Title, d.DocType, d.Body, d.ClientID, d.UpdatedAt, d.ID); err != nil {
		return fmt.Errorf("update legal document: %w", err)
	}
	return nil
}

func (r *LegalDocumentRepository) GetByID(id int) (*models.LegalDocument, error) {
	query := `SELECT ` + legalDocColumns + ` FROM legal_documents WHERE id=$1`
	d, err := scanLegalDocument(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get legal document: %w", err)
	}
	return d, nil
}

func (r *LegalDocumentRepository) Delete(id int) error {
	const query = `DELETE FROM legal_documents WHERE id=$1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete legal document: %w", err)
	}
	return nil
}

func (r *LegalDocumentRepository) List(clientID, limit, offset int) ([]*models.LegalDocument, error) {
	query := `SELECT ` + legalDocColumns + ` FROM legal_documents`
	args := []any{}
	if clientID > 0 {
		query += ` WHERE client_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, clientID, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list legal documents: %w", err)
	}
	defer rows.Close()

	var out []*models.LegalDocument
	for rows.Next() {
		d, err := scanLegalDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
