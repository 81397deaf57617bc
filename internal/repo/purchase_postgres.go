package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Gangesh855/factory-ops/internal/models"
)

type PostgresPurchaseOrderRepository struct {
	db *sql.DB
}

func NewPostgresPurchaseOrderRepository(db *sql.DB) *PostgresPurchaseOrderRepository {
	return &PostgresPurchaseOrderRepository{db: db}
}

func (r *PostgresPurchaseOrderRepository) Create(po models.PurchaseOrder, lines []models.PurchaseOrderItem) (models.PurchaseOrder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PurchaseOrder{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	po.Status = models.PurchaseOrderPending
	err = tx.QueryRowContext(ctx,
		`INSERT INTO purchase_orders (po_number, supplier_name, status, expected_delivery_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`,
		po.PONumber, po.SupplierName, po.Status, nullString(po.ExpectedDeliveryDate), po.CreatedBy, time.Now().UTC()).
		Scan(&po.ID)
	if err != nil {
		return models.PurchaseOrder{}, fmt.Errorf("failed to insert purchase order: %w", err)
	}

	for _, line := range lines {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO purchase_order_items (po_id, item_id, ordered_quantity, received_quantity, unit_cost)
			VALUES ($1, $2, $3, 0, $4)`,
			po.ID, line.ItemID, line.OrderedQuantity, line.UnitCost)
		if err != nil {
			return models.PurchaseOrder{}, fmt.Errorf("failed to insert purchase order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.PurchaseOrder{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return po, nil
}

func (r *PostgresPurchaseOrderRepository) GetByID(id int) (models.PurchaseOrder, []models.PurchaseOrderItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var po models.PurchaseOrder
	var expected, actual sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, po_number, supplier_name, status, expected_delivery_date, actual_delivery_date, created_by
		FROM purchase_orders WHERE id = $1`, id).
		Scan(&po.ID, &po.PONumber, &po.SupplierName, &po.Status, &expected, &actual, &po.CreatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PurchaseOrder{}, nil, ErrPurchaseOrderNotFound
	}
	if err != nil {
		return models.PurchaseOrder{}, nil, err
	}
	if expected.Valid {
		po.ExpectedDeliveryDate = expected.Time.Format(time.RFC3339)
	}
	if actual.Valid {
		po.ActualDeliveryDate = actual.Time.Format(time.RFC3339)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, po_id, item_id, ordered_quantity, received_quantity, unit_cost
		FROM purchase_order_items WHERE po_id = $1 ORDER BY id`, id)
	if err != nil {
		return models.PurchaseOrder{}, nil, err
	}
	defer rows.Close()

	var lines []models.PurchaseOrderItem
	for rows.Next() {
		var line models.PurchaseOrderItem
		if err := rows.Scan(&line.ID, &line.POID, &line.ItemID, &line.OrderedQuantity, &line.ReceivedQuantity, &line.UnitCost); err != nil {
			return models.PurchaseOrder{}, nil, err
		}
		lines = append(lines, line)
	}
	return po, lines, rows.Err()
}

func (r *PostgresPurchaseOrderRepository) MarkReceived(id int, received map[int]int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for lineID, quantity := range received {
		_, err := tx.ExecContext(ctx,
			`UPDATE purchase_order_items SET received_quantity = $1 WHERE id = $2 AND po_id = $3`,
			quantity, lineID, id)
		if err != nil {
			return fmt.Errorf("failed to update received quantity: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE purchase_orders SET status = $1, actual_delivery_date = $2, updated_at = $2 WHERE id = $3`,
		models.PurchaseOrderReceived, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update purchase order status: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrPurchaseOrderNotFound
	}

	return tx.Commit()
}
