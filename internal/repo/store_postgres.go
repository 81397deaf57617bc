package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Gangesh855/factory-ops/internal/models"
)

type PostgresStoreRepository struct {
	db *sql.DB
}

func NewPostgresStoreRepository(db *sql.DB) *PostgresStoreRepository {
	return &PostgresStoreRepository{db: db}
}

func (r *PostgresStoreRepository) Create(s models.Store) (models.Store, error) {
	query := `INSERT INTO stores (name, location, capacity_units, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, $5, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, s.Name, s.Location, s.CapacityUnits, s.Description, time.Now().UTC()).Scan(&s.ID)
	if err != nil {
		return models.Store{}, err
	}
	s.Active = true
	return s, nil
}

func (r *PostgresStoreRepository) GetAll() ([]models.Store, error) {
	query := `SELECT id, name, location, capacity_units, description, is_active FROM stores WHERE is_active ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []models.Store
	for rows.Next() {
		var s models.Store
		var location, description sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &location, &s.CapacityUnits, &description, &s.Active); err != nil {
			return nil, err
		}
		s.Location = location.String
		s.Description = description.String
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *PostgresStoreRepository) GetByID(id int) (models.Store, error) {
	query := `SELECT id, name, location, capacity_units, description, is_active FROM stores WHERE id = $1 AND is_active`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Store
	var location, description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.Name, &location, &s.CapacityUnits, &description, &s.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Store{}, ErrStoreNotFound
	}
	s.Location = location.String
	s.Description = description.String
	return s, err
}
