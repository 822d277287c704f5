package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"secinstall/internal/models"
)

type InvoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

const invoiceColumns = `id, client_id, project_id, number, amount, status, issued_at, paid_at, created_at`

func scanInvoice(row interface{ Scan(...any) error }) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(&inv.ID, &inv.ClientID, &inv.ProjectID, &inv.Number, &inv.Amount,
		&inv.Status, &inv.IssuedAt, &inv.PaidAt, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) Create(inv *models.Invoice) (int64, error) {
	const query = `
		INSERT INTO invoices (client_id, project_id, number, amount, status, issued_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query, inv.ClientID, inv.ProjectID, inv.Number, inv.Amount,
		inv.Status, inv.IssuedAt, inv.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create invoice: %w", err)
	}
	return id, nil
}

func (r *InvoiceRepository) GetByID(id int) (*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id=$1`
	inv, err := scanInvoice(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoiceRepository) GetByIDForUpdateTx(tx *sql.Tx, id int) (*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id=$1 FOR UPDATE`
	inv, err := scanInvoice(tx.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("lock invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoiceRepository) UpdateStatus(id int, status models.InvoiceStatus) error {
	const query = `UPDATE invoices SET status=$1 WHERE id=$2`
	if _, err := r.db.Exec(query, status, id); err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) MarkPaidTx(tx *sql.Tx, id int, paidAt time.Time) error {
	const query = `UPDATE invoices SET status=$1, paid_at=$2 WHERE id=$3`
	if _, err := tx.Exec(query, models.InvoiceStatusPaid, paidAt, id); err != nil {
		return fmt.Errorf("mark invoice paid: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) List(clientID, limit, offset int) ([]*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []any{}
	if clientID > 0 {
		query += ` WHERE client_id=$1 ORDER BY issued_at DESC LIMIT $2 OFFSET $3`
		args = append(args, clientID, limit, offset)
	} else {
		query += ` ORDER BY issued_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
