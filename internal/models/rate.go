package models

import "time"

// Rate is a price-list row for a service type.
type Rate struct {
	ID          int       `json:"id"`
	ServiceType string    `json:"service_type"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	UnitPrice   string    `json:"unit_price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
