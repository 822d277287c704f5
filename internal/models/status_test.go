package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadStatus(t *testing.T) {
	for _, s := range []string{"new", "contacted", "qualified", "converted", "lost"} {
		got, err := ParseLeadStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, LeadStatus(s), got)
	}
	_, err := ParseLeadStatus("warm")
	assert.Error(t, err)
}

func TestParseLeadSource(t *testing.T) {
	for _, s := range []string{"manual", "inquiry", "referral", "website"} {
		_, err := ParseLeadSource(s)
		assert.NoError(t, err)
	}
	_, err := ParseLeadSource("cold-call")
	assert.Error(t, err)
}

func TestParseInquiryStatus(t *testing.T) {
	for _, s := range []string{"new", "contacted", "converted", "closed"} {
		_, err := ParseInquiryStatus(s)
		assert.NoError(t, err)
	}
	_, err := ParseInquiryStatus("open")
	assert.Error(t, err)
}

func TestParseClientStatus(t *testing.T) {
	for _, s := range []string{"potential", "active", "inactive", "archived"} {
		_, err := ParseClientStatus(s)
		assert.NoError(t, err)
	}
	_, err := ParseClientStatus("churned")
	assert.Error(t, err)
}

func TestParseProjectStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "in_progress", "completed", "on_hold"} {
		_, err := ParseProjectStatus(s)
		assert.NoError(t, err)
	}
	_, err := ParseProjectStatus("cancelled")
	assert.Error(t, err)
}

func TestParseInvoiceStatus(t *testing.T) {
	for _, s := range []string{"draft", "sent", "paid", "void"} {
		_, err := ParseInvoiceStatus(s)
		assert.NoError(t, err)
	}
	_, err := ParseInvoiceStatus("overdue")
	assert.Error(t, err)
}

func TestParseReferralStatus(t *testing.T) {
	for _, s := range []string{"pending", "credited"} {
		_, err := ParseReferralStatus(s)
		assert.NoError(t, err)
	}
	_, err := ParseReferralStatus("rejected")
	assert.Error(t, err)
}
