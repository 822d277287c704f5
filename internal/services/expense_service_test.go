package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

func newExpenseMock(t *testing.T) (*ExpenseService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewExpenseService(db,
		repositories.NewExpenseRepository(db),
		repositories.NewFinancialLogRepository(db),
	)
	return svc, mock
}

// Recording an expense appends the ledger entry in the same transaction.
func TestExpenseCreate(t *testing.T) {
	svc, mock := newExpenseMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO expenses`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`INSERT INTO financial_logs`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	e := &models.Expense{Category: "materials", Amount: "340.00", Description: "cable and conduit", CreatedBy: 2}
	err := svc.Create(e)
	require.NoError(t, err)
	assert.Equal(t, 5, e.ID)
	assert.False(t, e.SpentAt.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseCreateValidation(t *testing.T) {
	svc, _ := newExpenseMock(t)

	err := svc.Create(&models.Expense{Amount: "10"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.Expense{Category: "materials"})
	assert.ErrorIs(t, err, ErrValidation)
}

// A ledger write failure rolls the expense back with it.
func TestExpenseCreateLedgerFailureRollsBack(t *testing.T) {
	svc, mock := newExpenseMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO expenses`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`INSERT INTO financial_logs`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := svc.Create(&models.Expense{Category: "materials", Amount: "340.00"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
