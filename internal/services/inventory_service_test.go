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

func newInventoryMock(t *testing.T) (*InventoryService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewInventoryService(repositories.NewInventoryRepository(db)), mock
}

func TestInventoryCreateDuplicateSKU(t *testing.T) {
	svc, mock := newInventoryMock(t)

	mock.ExpectQuery(`FROM inventory_items WHERE sku=\$1`).
		WithArgs("CAM-DOME-4MP").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "sku", "name", "category", "quantity", "unit_cost", "reorder_level", "created_at", "updated_at",
		}).AddRow(3, "CAM-DOME-4MP", "Dome camera 4MP", "camera", 12, "89.00", 4, time.Now(), time.Now()))

	err := svc.Create(&models.InventoryItem{SKU: "CAM-DOME-4MP", Name: "Dome camera 4MP"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryCreateValidation(t *testing.T) {
	svc, _ := newInventoryMock(t)

	err := svc.Create(&models.InventoryItem{Name: "Dome camera"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.InventoryItem{SKU: "CAM-1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInventoryUpdateNegativeQuantity(t *testing.T) {
	svc, _ := newInventoryMock(t)

	err := svc.Update(&models.InventoryItem{ID: 3, SKU: "CAM-1", Name: "Dome camera", Quantity: -2})
	assert.ErrorIs(t, err, ErrValidation)
}
