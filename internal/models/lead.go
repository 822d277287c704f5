package models

import (
	"fmt"
	"time"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

func ParseLeadStatus(s string) (LeadStatus, error) {
	switch LeadStatus(s) {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost:
		return LeadStatus(s), nil
	default:
		return "", fmt.Errorf("unknown lead status: %s", s)
	}
}

type LeadSource string

const (
	LeadSourceManual   LeadSource = "manual"
	LeadSourceInquiry  LeadSource = "inquiry"
	LeadSourceReferral LeadSource = "referral"
	LeadSourceWebsite  LeadSource = "website"
)

func ParseLeadSource(s string) (LeadSource, error) {
	switch LeadSource(s) {
	case LeadSourceManual, LeadSourceInquiry, LeadSourceReferral, LeadSourceWebsite:
		return LeadSource(s), nil
	default:
		return "", fmt.Errorf("unknown lead source: %s", s)
	}
}

// Lead is a tracked sales prospect. InquiryID is set iff Source is "inquiry".
type Lead struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Company        string     `json:"company"`
	Industry       string     `json:"industry"`
	ServiceType    string     `json:"service_type"`
	Address        string     `json:"address"`
	Notes          string     `json:"notes"`
	Source         LeadSource `json:"source"`
	InquiryID      *int       `json:"inquiry_id,omitempty"`
	Status         LeadStatus `json:"status"`
	EstimatedValue string     `json:"estimated_value"`
	OwnerID        int        `json:"owner_id"`
	CreatedAt      time.Time  `json:"created_at"`
}
