package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"secinstall/internal/models"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, lead_id, name, email, phone, company, industry, address, notes, status, contract_number, contract_signed_at, created_at`

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.LeadID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Industry,
		&c.Address, &c.Notes, &c.Status, &c.ContractNumber, &c.ContractSignedAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Create(client *models.Client) (int64, error) {
	return insertClient(r.db, client)
}

// CreateTx inserts inside a lead-conversion transaction.
func (r *ClientRepository) CreateTx(tx *sql.Tx, client *models.Client) (int64, error) {
	return insertClient(tx, client)
}

func insertClient(q execQueryer, client *models.Client) (int64, error) {
	const query = `
		INSERT INTO clients (lead_id, name, email, phone, company, industry, address, notes, status, contract_number, contract_signed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	var id int64
	err := q.QueryRow(query, client.LeadID, client.Name, client.Email, client.Phone,
		client.Company, client.Industry, client.Address, client.Notes, client.Status,
		client.ContractNumber, client.ContractSignedAt, client.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	return id, nil
}

func (r *ClientRepository) Update(client *models.Client) error {
	const query = `
		UPDATE clients
		SET name=$1, email=$2, phone=$3, company=$4, industry=$5, address=$6, notes=$7, status=$8, contract_number=$9, contract_signed_at=$10
		WHERE id=$11
	`
	if _, err := r.db.Exec(query, client.Name, client.Email, client.Phone, client.Company,
		client.Industry, client.Address, client.Notes, client.Status, client.ContractNumber,
		client.ContractSignedAt, client.ID); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientRepository) GetByID(id int) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id=$1`
	c, err := scanClient(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) GetByLeadID(leadID int) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE lead_id=$1`
	c, err := scanClient(r.db.QueryRow(query, leadID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by lead: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) Delete(id int) error {
	const query = `DELETE FROM clients WHERE id=$1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (r *ClientRepository) List(limit, offset int) ([]*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var res []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *ClientRepository) FindByName(name string) ([]*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE LOWER(name) LIKE $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(query, "%"+strings.ToLower(name)+"%")
	if err != nil {
		return nil, fmt.Errorf("find clients by name: %w", err)
	}
	defer rows.Close()

	var res []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
