package repositories

import (
	"database/sql"
	"fmt"

	"secinstall/internal/models"
)

type RateRepository struct {
	db *sql.DB
}

func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

const rateColumns = `id, service_type, name, unit, unit_price, active, created_at`

func scanRate(row interface{ Scan(...any) error }) (*models.Rate, error) {
	var rt models.Rate
	err := row.Scan(&rt.ID, &rt.ServiceType, &rt.Name, &rt.Unit, &rt.UnitPrice, &rt.Active, &rt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *RateRepository) Create(rt *models.Rate) (int64, error) {
	const query = `
		INSERT INTO rates (service_type, name, unit, unit_price, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query, rt.ServiceType, rt.Name, rt.Unit, rt.UnitPrice, rt.Active, rt.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create rate: %w", err)
	}
	return id, nil
}

func (r *RateRepository) Update(rt *models.Rate) error {
	const query = `
		UPDATE rates SET service_type=$1, name=$2, unit=$3, unit_price=$4, active=$5 WHERE id=$6
	`
	if _, err := r.db.Exec(query, rt.ServiceType, rt.Name, rt.Unit, rt.UnitPrice, rt.Active, rt.ID); err != nil {
		return fmt.Errorf("update rate: %w", err)
	}
	return nil
}

func (r *RateRepository) GetByID(id int) (*models.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates WHERE id=$1`
	rt, err := scanRate(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate: %w", err)
	}
	return rt, nil
}

func (r *RateRepository) Delete(id int) error {
	const query = `DELETE FROM rates WHERE id=$1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete rate: %w", err)
	}
	return nil
}

func (r *RateRepository) List(activeOnly bool, limit, offset int) ([]*models.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY service_type, name LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	defer rows.Close()

	var out []*models.Rate
	for rows.Next() {
		rt, err := scanRate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
