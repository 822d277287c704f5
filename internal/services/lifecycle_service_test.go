package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

func newLifecycleMock(t *testing.T) (*LifecycleService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewLifecycleService(db,
		repositories.NewInquiryRepository(db),
		repositories.NewLeadRepository(db),
		repositories.NewClientRepository(db),
	)
	return svc, mock
}

func inquiryRow(id int, convertedLeadID *int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference", "name", "email", "phone", "company",
		"service_type", "address", "message", "status", "converted_lead_id", "created_at",
	}).AddRow(id, "ref-1", "Acme Warehouses", "ops@acme.test", "555-0101", "Acme",
		"cctv", "12 Dock Rd", "need 8 cameras", "new", convertedLeadID, time.Now())
}

func leadRow(id int, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "company", "industry", "service_type",
		"address", "notes", "source", "inquiry_id", "status", "estimated_value", "owner_id", "created_at",
	}).AddRow(id, "Acme Warehouses", "ops@acme.test", "555-0101", "Acme", "logistics",
		"cctv", "12 Dock Rd", "", "inquiry", 3, status, "4500", 2, time.Now())
}

func TestConvertInquiryToLead(t *testing.T) {
	svc, mock := newLifecycleMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM inquiries WHERE id=\$1 FOR UPDATE`).
		WithArgs(3).
		WillReturnRows(inquiryRow(3, nil))
	mock.ExpectQuery(`INSERT INTO leads`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`UPDATE inquiries SET status=\$1, converted_lead_id=\$2`).
		WithArgs(models.InquiryStatusConverted, 7, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	lead, err := svc.ConvertInquiryToLead(3, 2)
	require.NoError(t, err)
	require.NotNil(t, lead)

	assert.Equal(t, 7, lead.ID)
	assert.Equal(t, "Acme Warehouses", lead.Name)
	assert.Equal(t, "cctv", lead.ServiceType)
	assert.Equal(t, models.LeadSourceInquiry, lead.Source)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, 2, lead.OwnerID)
	require.NotNil(t, lead.InquiryID)
	assert.Equal(t, 3, *lead.InquiryID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertInquiryToLeadNotFound(t *testing.T) {
	svc, mock := newLifecycleMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM inquiries WHERE id=\$1 FOR UPDATE`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	lead, err := svc.ConvertInquiryToLead(99, 2)
	assert.Nil(t, lead)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertInquiryToLeadAlreadyConverted(t *testing.T) {
	svc, mock := newLifecycleMock(t)

	existing := 7
	mock.ExpectBegin()
	mock.ExpectQuery(`FROM inquiries WHERE id=\$1 FOR UPDATE`).
		WithArgs(3).
		WillReturnRows(inquiryRow(3, &existing))
	mock.ExpectRollback()

	lead, err := svc.ConvertInquiryToLead(3, 2)
	assert.Nil(t, lead)
	assert.ErrorIs(t, err, ErrAlreadyConverted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A concurrent conversion that wins the race trips the unique index on
// leads.inquiry_id; the loser reports a conflict, not a 500.
func TestConvertInquiryToLeadConcurrentConflict(t *testing.T) {
	svc, mock := newLifecycleMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM inquiries WHERE id=\$1 FOR UPDATE`).
		WithArgs(3).
		WillReturnRows(inquiryRow(3, nil))
	mock.ExpectQuery(`INSERT INTO leads`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	lead, err := svc.ConvertInquiryToLead(3, 2)
	assert.Nil(t, lead)
	assert.ErrorIs(t, err, ErrAlreadyConverted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertLeadToClient(t *testing.T) {
	svc, mock := newLifecycleMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM leads WHERE id=\$1 FOR UPDATE`).
		WithArgs(7).
		WillReturnRows(leadRow(7, "qualified"))
	mock.ExpectQuery(`INSERT INTO clients`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(`UPDATE leads SET status=\$1`).
		WithArgs(models.LeadStatusConverted, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	client, err := svc.ConvertLeadToClient(7)
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.Equal(t, 11, client.ID)
	assert.Equal(t, "Acme Warehouses", client.Name)
	assert.Equal(t, models.ClientStatusPotential, client.Status)
	require.NotNil(t, client.LeadID)
	assert.Equal(t, 7, *client.LeadID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertLeadToClientNotFound(t *testing.T) {
	svc, mock := newLifecycleMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM leads WHERE id=\$1 FOR UPDATE`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	client, err := svc.ConvertLeadToClient(99)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertLeadToClientAlreadyConverted(t *testing.T) {
	svc, mock := newLifecycleMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM leads WHERE id=\$1 FOR UPDATE`).
		WithArgs(7).
		WillReturnRows(leadRow(7, "converted"))
	mock.ExpectRollback()

	client, err := svc.ConvertLeadToClient(7)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrAlreadyConverted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The status flip on the source lead failing must abort the whole
// conversion; no client row survives.
func TestConvertLeadToClientStatusFlipFails(t *testing.T) {
	svc, mock := newLifecycleMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM leads WHERE id=\$1 FOR UPDATE`).
		WithArgs(7).
		WillReturnRows(leadRow(7, "new"))
	mock.ExpectQuery(`INSERT INTO clients`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(`UPDATE leads SET status=\$1`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	client, err := svc.ConvertLeadToClient(7)
	assert.Nil(t, client)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
