package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

// statements run in order at startup. Each is idempotent so repeated
// application is safe.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role_id INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id SERIAL PRIMARY KEY,
		reference TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		service_type TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'new',
		converted_lead_id INT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		industry TEXT NOT NULL DEFAULT '',
		service_type TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT 'manual',
		inquiry_id INT REFERENCES inquiries(id),
		status TEXT NOT NULL DEFAULT 'new',
		estimated_value TEXT NOT NULL DEFAULT '',
		owner_id INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// one inquiry converts into at most one lead
	`CREATE UNIQUE INDEX IF NOT EXISTS leads_inquiry_id_key ON leads (inquiry_id) WHERE inquiry_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		lead_id INT REFERENCES leads(id),
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		industry TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'potential',
		contract_number TEXT NOT NULL DEFAULT '',
		contract_signed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// at most one client per lead (1:1 conversion)
	`CREATE UNIQUE INDEX IF NOT EXISTS clients_lead_id_key ON clients (lead_id) WHERE lead_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		client_id INT REFERENCES clients(id),
		lead_id INT REFERENCES leads(id),
		project_name TEXT NOT NULL,
		service_type TEXT NOT NULL,
		technician_id INT NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'scheduled',
		cost TEXT NOT NULL DEFAULT '',
		work_notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK (client_id IS NOT NULL OR lead_id IS NOT NULL)
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id SERIAL PRIMARY KEY,
		project_id INT REFERENCES projects(id),
		category TEXT NOT NULL,
		amount TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		spent_at TIMESTAMPTZ NOT NULL,
		created_by INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS financial_logs (
		id SERIAL PRIMARY KEY,
		entry_type TEXT NOT NULL,
		amount TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		project_id INT,
		expense_id INT,
		invoice_id INT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id SERIAL PRIMARY KEY,
		client_id INT NOT NULL REFERENCES clients(id),
		project_id INT REFERENCES projects(id),
		number TEXT NOT NULL UNIQUE,
		amount TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'draft',
		issued_at TIMESTAMPTZ NOT NULL,
		paid_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id SERIAL PRIMARY KEY,
		sku TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		quantity INT NOT NULL DEFAULT 0,
		unit_cost TEXT NOT NULL DEFAULT '',
		reorder_level INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS legal_documents (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		doc_type TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		client_id INT REFERENCES clients(id),
		created_by INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rates (
		id SERIAL PRIMARY KEY,
		service_type TEXT NOT NULL,
		name TEXT NOT NULL,
		unit TEXT NOT NULL DEFAULT '',
		unit_price TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS referrals (
		id SERIAL PRIMARY KEY,
		referrer_client_id INT NOT NULL REFERENCES clients(id),
		lead_id INT REFERENCES leads(id),
		referred_name TEXT NOT NULL,
		referred_phone TEXT NOT NULL DEFAULT '',
		reward_amount TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Apply runs all schema statements in order.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration %d: %w", i, err)
		}
	}
	return nil
}
