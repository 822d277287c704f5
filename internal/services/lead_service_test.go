package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

func newLeadMock(t *testing.T) (*LeadService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewLeadService(repositories.NewLeadRepository(db), nil), mock
}

func TestLeadCreateDefaults(t *testing.T) {
	svc, mock := newLeadMock(t)

	mock.ExpectQuery(`INSERT INTO leads`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	lead := &models.Lead{Name: "Walk-in prospect", OwnerID: 2}
	err := svc.Create(lead)
	require.NoError(t, err)
	assert.Equal(t, 7, lead.ID)
	assert.Equal(t, models.LeadSourceManual, lead.Source)
	assert.Equal(t, models.LeadStatusNew, lead.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadCreateUnknownSource(t *testing.T) {
	svc, mock := newLeadMock(t)

	err := svc.Create(&models.Lead{Name: "Walk-in", Source: "cold-call"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// inquiry_id is present iff source is "inquiry"; leads with that source
// exist only as conversion output, so a direct create must be rejected
// before any write.
func TestLeadCreateInquirySourceRequiresConversion(t *testing.T) {
	svc, mock := newLeadMock(t)

	err := svc.Create(&models.Lead{Name: "Walk-in", Source: models.LeadSourceInquiry})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadCreateInquiryIDRequiresInquirySource(t *testing.T) {
	svc, mock := newLeadMock(t)

	inquiryID := 3
	err := svc.Create(&models.Lead{Name: "Walk-in", Source: models.LeadSourceManual, InquiryID: &inquiryID})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadUpdateStatus(t *testing.T) {
	svc, mock := newLeadMock(t)

	mock.ExpectQuery(`FROM leads WHERE id=\$1`).
		WithArgs(7).
		WillReturnRows(leadRow(7, "new"))
	mock.ExpectExec(`UPDATE leads SET status=\$1`).
		WithArgs(models.LeadStatusQualified, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	lead, err := svc.UpdateStatus(7, "qualified")
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusQualified, lead.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadUpdateStatusUnknown(t *testing.T) {
	svc, _ := newLeadMock(t)

	lead, err := svc.UpdateStatus(7, "warm")
	assert.Nil(t, lead)
	assert.ErrorIs(t, err, ErrValidation)
}
