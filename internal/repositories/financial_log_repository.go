package repositories

import (
	"database/sql"
	"fmt"

	"secinstall/internal/models"
)

type FinancialLogRepository struct {
	db *sql.DB
}

func NewFinancialLogRepository(db *sql.DB) *FinancialLogRepository {
	return &FinancialLogRepository{db: db}
}

// CreateTx appends a ledger row inside the transaction of the mutation
// that produced it (expense recorded, invoice paid).
func (r *FinancialLogRepository) CreateTx(tx *sql.Tx, entry *models.FinancialLog) (int64, error) {
	const query = `
		INSERT INTO financial_logs (entry_type, amount, description, project_id, expense_id, invoice_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := tx.QueryRow(query, entry.EntryType, entry.Amount, entry.Description,
		entry.ProjectID, entry.ExpenseID, entry.InvoiceID, entry.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create financial log: %w", err)
	}
	return id, nil
}

func (r *FinancialLogRepository) List(limit, offset int) ([]*models.FinancialLog, error) {
	const query = `
		SELECT id, entry_type, amount, description, project_id, expense_id, invoice_id, created_at
		FROM financial_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list financial logs: %w", err)
	}
	defer rows.Close()

	var out []*models.FinancialLog
	for rows.Next() {
		var e models.FinancialLog
		if err := rows.Scan(&e.ID, &e.EntryType, &e.Amount, &e.Description,
			&e.ProjectID, &e.ExpenseID, &e.InvoiceID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
