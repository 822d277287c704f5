package repositories

import (
	"database/sql"
	"fmt"

	"secinstall/internal/models"
)

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `id, sku, name, category, quantity, unit_cost, reorder_level, created_at, updated_at`

func scanInventoryItem(row interface{ Scan(...any) error }) (*models.InventoryItem, error) {
	var it models.InventoryItem
	err := row.Scan(&it.ID, &it.SKU, &it.Name, &it.Category, &it.Quantity,
		&it.UnitCost, &it.ReorderLevel, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *InventoryRepository) Create(it *models.InventoryItem) (int64, error) {
	const query = `
		INSERT INTO inventory_items (sku, name, category, quantity, unit_cost, reorder_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query, it.SKU, it.Name, it.Category, it.Quantity,
		it.UnitCost, it.ReorderLevel, it.CreatedAt, it.UpdatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create inventory item: %w", err)
	}
	return id, nil
}

func (r *InventoryRepository) Update(it *models.InventoryItem) error {
	const query = `
		UPDATE inventory_items
		SET sku=$1, name=$2, category=$3, quantity=$4, unit_cost=$5, reorder_level=$6, updated_at=$7
		WHERE id=$8
	`
	if _, err := r.db.Exec(query, it.SKU, it.Name, it.Category, it.Quantity,
		it.UnitCost, it.ReorderLevel, it.UpdatedAt, it.ID); err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) GetByID(id int) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id=$1`
	it, err := scanInventoryItem(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return it, nil
}

func (r *InventoryRepository) GetBySKU(sku string) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE sku=$1`
	it, err := scanInventoryItem(r.db.QueryRow(query, sku))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item by sku: %w", err)
	}
	return it, nil
}

func (r *InventoryRepository) Delete(id int) error {
	const query = `DELETE FROM inventory_items WHERE id=$1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) List(limit, offset int) ([]*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var out []*models.InventoryItem
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
