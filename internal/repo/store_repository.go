package repo

import (
	"errors"

	"github.com/Gangesh855/factory-ops/internal/models"
)

var ErrStoreNotFound = errors.New("store not found")

type StoreRepository interface {
	Create(store models.Store) (models.Store, error)
	GetAll() ([]models.Store, error)
	GetByID(id int) (models.Store, error)
}
