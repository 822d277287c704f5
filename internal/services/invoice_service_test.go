package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

func newInvoiceMock(t *testing.T) (*InvoiceService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewInvoiceService(db,
		repositories.NewInvoiceRepository(db),
		repositories.NewFinancialLogRepository(db),
	)
	return svc, mock
}

func invoiceRow(id int, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "client_id", "project_id", "number", "amount", "status", "issued_at", "paid_at", "created_at",
	}).AddRow(id, 11, nil, "INV-2026-014", "1200.00", status, time.Now(), nil, time.Now())
}

func TestInvoiceCreateValidation(t *testing.T) {
	svc, _ := newInvoiceMock(t)

	err := svc.Create(&models.Invoice{Number: "INV-1", Amount: "10"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.Invoice{ClientID: 1, Amount: "10"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.Invoice{ClientID: 1, Number: "INV-1"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.Invoice{ClientID: 1, Number: "INV-1", Amount: "10", Status: "bogus"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvoiceMarkPaid(t *testing.T) {
	svc, mock := newInvoiceMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM invoices WHERE id=\$1 FOR UPDATE`).
		WithArgs(4).
		WillReturnRows(invoiceRow(4, "sent"))
	mock.ExpectExec(`UPDATE invoices SET status=\$1, paid_at=\$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO financial_logs`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))
	mock.ExpectCommit()

	inv, err := svc.MarkPaid(4)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, models.InvoiceStatusPaid, inv.Status)
	assert.NotNil(t, inv.PaidAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceMarkPaidTwice(t *testing.T) {
	svc, mock := newInvoiceMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM invoices WHERE id=\$1 FOR UPDATE`).
		WithArgs(4).
		WillReturnRows(invoiceRow(4, "paid"))
	mock.ExpectRollback()

	inv, err := svc.MarkPaid(4)
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceMarkPaidNotFound(t *testing.T) {
	svc, mock := newInvoiceMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM invoices WHERE id=\$1 FOR UPDATE`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	inv, err := svc.MarkPaid(99)
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Routing "paid" through UpdateStatus must still write the ledger entry.
func TestInvoiceUpdateStatusPaidRoutesToMarkPaid(t *testing.T) {
	svc, mock := newInvoiceMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM invoices WHERE id=\$1 FOR UPDATE`).
		WithArgs(4).
		WillReturnRows(invoiceRow(4, "sent"))
	mock.ExpectExec(`UPDATE invoices SET status=\$1, paid_at=\$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO financial_logs`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(32))
	mock.ExpectCommit()

	inv, err := svc.UpdateStatus(4, "paid")
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, inv.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceUpdateStatusUnknown(t *testing.T) {
	svc, _ := newInvoiceMock(t)

	inv, err := svc.UpdateStatus(4, "settled")
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, ErrValidation)
}
