package models

import (
	"fmt"
	"time"
)

type ReferralStatus string

const (
	ReferralStatusPending  ReferralStatus = "pending"
	ReferralStatusCredited ReferralStatus = "credited"
)

func ParseReferralStatus(s string) (ReferralStatus, error) {
	switch ReferralStatus(s) {
	case ReferralStatusPending, ReferralStatusCredited:
		return ReferralStatus(s), nil
	default:
		return "", fmt.Errorf("unknown referral status: %s", s)
	}
}

// Referral tracks a client recommending us to someone. LeadID is filled
// once the referred contact is entered as a lead.
type Referral struct {
	ID               int            `json:"id"`
	ReferrerClientID int            `json:"referrer_client_id"`
	LeadID           *int           `json:"lead_id,omitempty"`
	ReferredName     string         `json:"referred_name"`
	ReferredPhone    string         `json:"referred_phone"`
	RewardAmount     string         `json:"reward_amount"`
	Status           ReferralStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
}
