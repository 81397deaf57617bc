package repo

import (
	"errors"

	"github.com/Gangesh855/factory-ops/internal/models"
)

var (
	ErrItemNotFound          = errors.New("inventory item not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
)

// ItemRepository defines the interface for inventory item data operations.
// Quantity is deliberately absent from Update: stock levels change only
// through the ledger.
type ItemRepository interface {
	Create(item models.Item) (models.Item, error)
	GetByID(id int) (models.Item, error)
	GetByStoreID(storeID int) ([]models.Item, error)
	Update(item models.Item) (models.Item, error)
	Deactivate(id int) error
	LowStock(storeID int) ([]models.Item, error)
}
