package models

import "time"

// LegalDocument stores contract/agreement text. Body is plain text; file
// and object storage live elsewhere.
type LegalDocument struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	DocType   string    `json:"doc_type"`
	Body      string    `json:"body"`
	ClientID  *int      `json:"client_id,omitempty"`
	CreatedBy int       `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
