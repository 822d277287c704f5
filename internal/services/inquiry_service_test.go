package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

func newInquiryMock(t *testing.T) (*InquiryService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewInquiryService(repositories.NewInquiryRepository(db), nil, nil), mock
}

func TestInquiryCreateAssignsReference(t *testing.T) {
	svc, mock := newInquiryMock(t)

	mock.ExpectQuery(`INSERT INTO inquiries`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	q := &models.Inquiry{Name: "Acme Warehouses", ServiceType: "cctv"}
	err := svc.Create(q)
	require.NoError(t, err)
	assert.Equal(t, 3, q.ID)
	assert.NotEmpty(t, q.Reference)
	assert.Equal(t, models.InquiryStatusNew, q.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryCreateRequiresName(t *testing.T) {
	svc, _ := newInquiryMock(t)

	err := svc.Create(&models.Inquiry{ServiceType: "cctv"})
	assert.ErrorIs(t, err, ErrValidation)
}

// the reference is the public lookup code handed back to the submitter
func TestInquiryGetByReference(t *testing.T) {
	svc, mock := newInquiryMock(t)

	mock.ExpectQuery(`FROM inquiries WHERE reference=\$1`).
		WithArgs("ref-1").
		WillReturnRows(inquiryRow(3, nil))

	q, err := svc.GetByReference("ref-1")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 3, q.ID)
	assert.Equal(t, "ref-1", q.Reference)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryGetByReferenceMissing(t *testing.T) {
	svc, mock := newInquiryMock(t)

	mock.ExpectQuery(`FROM inquiries WHERE reference=\$1`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	q, err := svc.GetByReference("nope")
	assert.NoError(t, err)
	assert.Nil(t, q)
	assert.NoError(t, mock.ExpectationsWereMet())
}
