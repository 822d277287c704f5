package models

import (
	"fmt"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusScheduled  ProjectStatus = "scheduled"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectStatusScheduled, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusOnHold:
		return ProjectStatus(s), nil
	default:
		return "", fmt.Errorf("unknown project status: %s", s)
	}
}

// Project is a unit of work tied to a client and/or lead. At least one of
// ClientID/LeadID must be set; both may be set (e.g. a project opened
// against a lead that later became a client).
type Project struct {
	ID           int           `json:"id"`
	ClientID     *int          `json:"client_id,omitempty"`
	LeadID       *int          `json:"lead_id,omitempty"`
	ProjectName  string        `json:"project_name"`
	ServiceType  string        `json:"service_type"`
	TechnicianID int           `json:"technician_id"`
	Status       ProjectStatus `json:"status"`
	Cost         string        `json:"cost"`
	WorkNotes    string        `json:"work_notes"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
