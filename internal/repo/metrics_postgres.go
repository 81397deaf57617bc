package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics

	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_items WHERE is_active`).Scan(&m.TotalItems)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_transactions`).Scan(&m.TotalTransactions)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_items WHERE quantity <= reorder_level AND is_active`).Scan(&m.LowStockCount)

	_ = r.db.QueryRowContext(ctx, `
		SELECT i.sku, COUNT(*) as cnt
		FROM inventory_transactions t
		JOIN inventory_items i ON t.item_id = i.id
		GROUP BY i.sku
		ORDER BY cnt DESC
		LIMIT 1
	`).Scan(&m.MostMovedItem.SKU, &m.MostMovedItem.TransactionCount)

	return m, nil
}
