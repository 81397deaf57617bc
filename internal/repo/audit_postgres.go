package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Gangesh855/factory-ops/internal/models"
)

type PostgresAuditRepository struct {
	db *sql.DB
}

func NewPostgresAuditRepository(db *sql.DB) *PostgresAuditRepository {
	return &PostgresAuditRepository{db: db}
}

func (r *PostgresAuditRepository) Log(entry models.AuditEntry) error {
	query := `INSERT INTO audit_log (entity, action, entity_id, old_value, new_value, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		entry.Entity, entry.Action, entry.EntityID, entry.OldValue, entry.NewValue, entry.ActorID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}
