package repositories

import (
	"database/sql"
	"fmt"

	"secinstall/internal/models"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `id, project_id, category, amount, description, spent_at, created_by, created_at`

func scanExpense(row interface{ Scan(...any) error }) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.ProjectID, &e.Category, &e.Amount, &e.Description,
		&e.SpentAt, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateTx inserts inside the expense+ledger transaction.
func (r *ExpenseRepository) CreateTx(tx *sql.Tx, e *models.Expense) (int64, error) {
	const query = `
		INSERT INTO expenses (project_id, category, amount, description, spent_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := tx.QueryRow(query, e.ProjectID, e.Category, e.Amount, e.Description,
		e.SpentAt, e.CreatedBy, e.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}
	return id, nil
}

func (r *ExpenseRepository) Update(e *models.Expense) error {
	const query = `
		UPDATE expenses SET project_id=$1, category=$2, amount=$3, description=$4, spent_at=$5 WHERE id=$6
	`
	if _, err := r.db.Exec(query, e.ProjectID, e.Category, e.Amount, e.Description, e.SpentAt, e.ID); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) GetByID(id int) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id=$1`
	e, err := scanExpense(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepository) Delete(id int) error {
	const query = `DELETE FROM expenses WHERE id=$1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) List(projectID, limit, offset int) ([]*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	args := []any{}
	if projectID > 0 {
		query += ` WHERE project_id=$1 ORDER BY spent_at DESC LIMIT $2 OFFSET $3`
		args = append(args, projectID, limit, offset)
	} else {
		query += ` ORDER BY spent_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []*models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
