package models

import (
	"fmt"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
	InvoiceStatusVoid  InvoiceStatus = "void"
)

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid:
		return InvoiceStatus(s), nil
	default:
		return "", fmt.Errorf("unknown invoice status: %s", s)
	}
}

type Invoice struct {
	ID        int           `json:"id"`
	ClientID  int           `json:"client_id"`
	ProjectID *int          `json:"project_id,omitempty"`
	Number    string        `json:"number"`
	Amount    string        `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	IssuedAt  time.Time     `json:"issued_at"`
	PaidAt    *time.Time    `json:"paid_at,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
