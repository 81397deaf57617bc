package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Gangesh855/factory-ops/internal/models"
)

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

const itemColumns = `id, store_id, sku, name, description, unit_of_measure, quantity, reorder_level, max_quantity, unit_cost, is_active`

func (r *PostgresItemRepository) Create(item models.Item) (models.Item, error) {
	query := `INSERT INTO inventory_items
		(store_id, sku, name, description, unit_of_measure, quantity, reorder_level, max_quantity, unit_cost, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, $10, $10) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		item.StoreID, item.SKU, item.Name, item.Description, item.UnitOfMeasure,
		item.Quantity, item.ReorderLevel, item.MaxQuantity, item.UnitCost, time.Now().UTC()).
		Scan(&item.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return models.Item{}, ErrDuplicatedValueUnique
		}
		return models.Item{}, err
	}
	item.Active = true
	return item, nil
}

func (r *PostgresItemRepository) GetByID(id int) (models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 AND is_active`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	i, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return i, err
}

func (r *PostgresItemRepository) GetByStoreID(storeID int) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE store_id = $1 AND is_active ORDER BY sku`
	return r.queryItems(query, storeID)
}

// Update writes item metadata only; quantity is owned by the ledger.
func (r *PostgresItemRepository) Update(item models.Item) (models.Item, error) {
	query := `UPDATE inventory_items
		SET name = $1, description = $2, unit_of_measure = $3, reorder_level = $4, max_quantity = $5, unit_cost = $6, updated_at = $7
		WHERE id = $8 AND is_active`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.UnitOfMeasure, item.ReorderLevel,
		item.MaxQuantity, item.UnitCost, time.Now().UTC(), item.ID)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Item{}, ErrItemNotFound
	}
	return r.GetByID(item.ID)
}

// Deactivate soft-deletes an item. Rows are never removed while the ledger
// references them.
func (r *PostgresItemRepository) Deactivate(id int) error {
	query := `UPDATE inventory_items SET is_active = FALSE, updated_at = $1 WHERE id = $2 AND is_active`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresItemRepository) LowStock(storeID int) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items
		WHERE store_id = $1 AND quantity <= reorder_level AND is_active
		ORDER BY quantity ASC`
	return r.queryItems(query, storeID)
}

func (r *PostgresItemRepository) queryItems(query string, args ...any) ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var i models.Item
	var description, unitOfMeasure sql.NullString
	err := row.Scan(&i.ID, &i.StoreID, &i.SKU, &i.Name, &description, &unitOfMeasure,
		&i.Quantity, &i.ReorderLevel, &i.MaxQuantity, &i.UnitCost, &i.Active)
	i.Description = description.String
	i.UnitOfMeasure = unitOfMeasure.String
	return i, err
}
