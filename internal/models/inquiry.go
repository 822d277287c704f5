package models

import (
	"fmt"
	"time"
)

// InquiryStatus defines the possible statuses for a public inquiry.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusConverted InquiryStatus = "converted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

func ParseInquiryStatus(s string) (InquiryStatus, error) {
	switch InquiryStatus(s) {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusConverted, InquiryStatusClosed:
		return InquiryStatus(s), nil
	default:
		return "", fmt.Errorf("unknown inquiry status: %s", s)
	}
}

// Inquiry is a raw public submission (quote or appointment request).
// Inquiries are never deleted by normal flow; conversion sets
// ConvertedLeadID and flips the status to "converted".
type Inquiry struct {
	ID              int           `json:"id"`
	Reference       string        `json:"reference"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Company         string        `json:"company"`
	ServiceType     string        `json:"service_type"`
	Address         string        `json:"address"`
	Message         string        `json:"message"`
	Status          InquiryStatus `json:"status"`
	ConvertedLeadID *int          `json:"converted_lead_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
