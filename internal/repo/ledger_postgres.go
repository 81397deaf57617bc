package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Gangesh855/factory-ops/internal/models"
)

type PostgresLedgerRepository struct {
	db *sql.DB
}

func NewPostgresLedgerRepository(db *sql.DB) *PostgresLedgerRepository {
	return &PostgresLedgerRepository{db: db}
}

// Apply performs the ledger unit of work: lock the item row, check the
// non-negativity invariant, write the new quantity and the ledger row, commit.
// The row lock serializes concurrent transactions against the same item so two
// callers can never both read the same stale quantity.
func (r *PostgresLedgerRepository) Apply(itemID, delta int, entry models.Transaction) (models.Transaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT quantity FROM inventory_items WHERE id = $1 AND is_active FOR UPDATE`, itemID).
		Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, ErrItemNotFound
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to read item quantity: %w", err)
	}

	newQuantity := current + delta
	if newQuantity < 0 {
		return models.Transaction{}, ErrInsufficientStock
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`UPDATE inventory_items SET quantity = $1, updated_at = $2 WHERE id = $3`,
		newQuantity, now, itemID); err != nil {
		return models.Transaction{}, fmt.Errorf("failed to update item quantity: %w", err)
	}

	entry.ItemID = itemID
	entry.ResultingQuantity = newQuantity
	err = tx.QueryRowContext(ctx,
		`INSERT INTO inventory_transactions
			(item_id, transaction_type, quantity, resulting_quantity, reference_type, reference_id, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		entry.ItemID, entry.Type, entry.Quantity, entry.ResultingQuantity,
		nullString(entry.ReferenceType), nullInt(entry.ReferenceID),
		nullString(entry.Notes), entry.CreatedBy, now).
		Scan(&entry.ID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Transaction{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	entry.CreatedAt = now.Format(time.RFC3339)
	return entry, nil
}

const defaultLimit = 100

// GetByItemID returns ledger rows for an item, newest first.
func (r *PostgresLedgerRepository) GetByItemID(itemID int, tf TransactionFilter) ([]models.Transaction, int, error) {
	whereClause, args := r.buildWhereClause(itemID, tf)

	// Handle special case: limit = 0 means return count only
	if tf.Limit != nil && *tf.Limit == 0 {
		total, err := r.getTotal(whereClause, args)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to get total count: %w", err)
		}
		return []models.Transaction{}, total, nil
	}

	if tf.Offset != nil && *tf.Offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	total, err := r.getTotal(whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	if tf.Offset != nil && *tf.Offset >= total {
		return []models.Transaction{}, total, nil
	}

	query, queryArgs := r.buildMainQuery(whereClause, args, tf)
	transactions, err := r.executeQuery(query, queryArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return transactions, total, nil
}

func (r *PostgresLedgerRepository) buildWhereClause(itemID int, tf TransactionFilter) (string, []any) {
	args := []any{itemID}
	whereClause := "WHERE item_id = $1"
	argIndex := 2

	if tf.Since != nil {
		whereClause += fmt.Sprintf(" AND created_at >= $%d", argIndex)
		args = append(args, *tf.Since)
		argIndex++
	}

	if tf.Until != nil {
		whereClause += fmt.Sprintf(" AND created_at <= $%d", argIndex)
		args = append(args, *tf.Until)
	}

	return whereClause, args
}

func (r *PostgresLedgerRepository) buildMainQuery(whereClause string, baseArgs []any, tf TransactionFilter) (string, []any) {
	query := fmt.Sprintf(`SELECT id, item_id, transaction_type, quantity, resulting_quantity, reference_type, reference_id, notes, created_by, created_at
		FROM inventory_transactions %s ORDER BY created_at DESC, id DESC`, whereClause)
	args := make([]any, len(baseArgs))
	copy(args, baseArgs)
	argIndex := len(baseArgs) + 1

	limit := defaultLimit
	if tf.Limit != nil && *tf.Limit > 0 {
		limit = min(*tf.Limit, defaultLimit)
	}
	query += fmt.Sprintf(" LIMIT $%d", argIndex)
	args = append(args, limit)
	argIndex++

	if tf.Offset != nil && *tf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *tf.Offset)
	}

	return query, args
}

func (r *PostgresLedgerRepository) getTotal(whereClause string, args []any) (int, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inventory_transactions %s", whereClause)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *PostgresLedgerRepository) executeQuery(query string, args []any) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var refType, notes sql.NullString
		var refID sql.NullInt64
		var createdAt time.Time
		if err := rows.Scan(&t.ID, &t.ItemID, &t.Type, &t.Quantity, &t.ResultingQuantity,
			&refType, &refID, &notes, &t.CreatedBy, &createdAt); err != nil {
			return nil, err
		}
		t.ReferenceType = refType.String
		t.ReferenceID = int(refID.Int64)
		t.Notes = notes.String
		t.CreatedAt = createdAt.Format(time.RFC3339)
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(i), Valid: i != 0}
}
