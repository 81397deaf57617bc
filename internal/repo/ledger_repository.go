package repo

import (
	"errors"

	"github.com/Gangesh855/factory-ops/internal/models"
)

// ErrInsufficientStock means the requested change would drive the item's
// quantity below zero. Nothing is written when it is returned.
var ErrInsufficientStock = errors.New("insufficient stock")

// LedgerRepository owns the read-modify-write of an item's quantity together
// with the insert of its ledger row. Apply must be atomic: either the item
// update and the transaction row both land, or neither does. Concurrent
// calls against the same item are serialized by the implementation.
type LedgerRepository interface {
	Apply(itemID, delta int, entry models.Transaction) (models.Transaction, error)
	GetByItemID(itemID int, tf TransactionFilter) ([]models.Transaction, int, error)
}
