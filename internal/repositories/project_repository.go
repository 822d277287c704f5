package repositories

import (
	"database/sql"
	"fmt"

	"secinstall/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, client_id, lead_id, project_name, service_type, technician_id, status, cost, work_notes, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.ClientID, &p.LeadID, &p.ProjectName, &p.ServiceType,
		&p.TechnicianID, &p.Status, &p.Cost, &p.WorkNotes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Create(p *models.Project) (int64, error) {
	const query = `
		INSERT INTO projects (client_id, lead_id, project_name, service_type, technician_id, status, cost, work_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query, p.ClientID, p.LeadID, p.ProjectName, p.ServiceType,
		p.TechnicianID, p.Status, p.Cost, p.WorkNotes, p.CreatedAt, p.UpdatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}
	return id, nil
}

func (r *ProjectRepository) Update(p *models.Project) error {
	const query = `
		UPDATE projects
		SET client_id=$1, lead_id=$2, project_name=$3, service_type=$4, technician_id=$5, status=$6, cost=$7, work_notes=$8, updated_at=$9
		WHERE id=$10
	`
	if _, err := r.db.Exec(query, p.ClientID, p.LeadID, p.ProjectName, p.ServiceType,
		p.TechnicianID, p.Status, p.Cost, p.WorkNotes, p.UpdatedAt, p.ID); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(id int) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	p, err := scanProject(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) Delete(id int) error {
	const query = `DELETE FROM projects WHERE id=$1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) List(limit, offset int) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryProjects(query, limit, offset)
}

func (r *ProjectRepository) ListByClient(clientID, limit, offset int) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE client_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryProjects(query, clientID, limit, offset)
}

func (r *ProjectRepository) ListByTechnician(technicianID, limit, offset int) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE technician_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryProjects(query, technicianID, limit, offset)
}

func (r *ProjectRepository) queryProjects(query string, args ...any) ([]*models.Project, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
