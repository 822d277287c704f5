package models

import (
	"fmt"
	"time"
)

type ClientStatus string

const (
	ClientStatusPotential ClientStatus = "potential"
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
	ClientStatusArchived  ClientStatus = "archived"
)

func ParseClientStatus(s string) (ClientStatus, error) {
	switch ClientStatus(s) {
	case ClientStatusPotential, ClientStatusActive, ClientStatusInactive, ClientStatusArchived:
		return ClientStatus(s), nil
	default:
		return "", fmt.Errorf("unknown client status: %s", s)
	}
}

// Client represents an active or potential customer. LeadID is nullable:
// a client may be created directly, bypassing the lead stage. At most one
// client may reference a given lead (unique index on clients.lead_id).
type Client struct {
	ID               int          `json:"id"`
	LeadID           *int         `json:"lead_id,omitempty"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Company          string       `json:"company"`
	Industry         string       `json:"industry"`
	Address          string       `json:"address"`
	Notes            string       `json:"notes"`
	Status           ClientStatus `json:"status"`
	ContractNumber   string       `json:"contract_number"`
	ContractSignedAt *time.Time   `json:"contract_signed_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}
