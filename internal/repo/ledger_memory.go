package repo

import (
	"sync"
	"time"

	"github.com/Gangesh855/factory-ops/internal/models"
)

// InMemoryLedgerRepository keeps the ledger in a slice and serializes Apply
// with a mutex, mirroring the row lock the Postgres implementation takes.
type InMemoryLedgerRepository struct {
	mu           sync.Mutex
	items        *InMemoryItemRepository
	transactions []models.Transaction
}

func NewInMemoryLedgerRepository(items *InMemoryItemRepository) *InMemoryLedgerRepository {
	return &InMemoryLedgerRepository{
		items:        items,
		transactions: []models.Transaction{},
	}
}

func (r *InMemoryLedgerRepository) Apply(itemID, delta int, entry models.Transaction) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.items.GetByID(itemID)
	if err != nil {
		return models.Transaction{}, ErrItemNotFound
	}

	newQuantity := item.Quantity + delta
	if newQuantity < 0 {
		return models.Transaction{}, ErrInsufficientStock
	}

	r.items.setQuantity(itemID, newQuantity)

	entry.ID = len(r.transactions) + 1
	entry.ItemID = itemID
	entry.ResultingQuantity = newQuantity
	entry.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	r.transactions = append(r.transactions, entry)
	return entry, nil
}

// GetByItemID returns transactions in insertion order, optionally filtered by
// date range and paginated.
func (r *InMemoryLedgerRepository) GetByItemID(itemID int, tf TransactionFilter) ([]models.Transaction, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.Transaction
	for _, t := range r.transactions {
		if t.ItemID == itemID {
			if (tf.Since != nil && t.CreatedAt < tf.Since.Format(time.RFC3339)) ||
				(tf.Until != nil && t.CreatedAt > tf.Until.Format(time.RFC3339)) {
				continue
			}
			filtered = append(filtered, t)
		}
	}

	if tf.Offset != nil && *tf.Offset > len(filtered) {
		return nil, 0, nil
	}

	start := 0
	if tf.Offset != nil {
		start = clamp(*tf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if tf.Limit != nil && *tf.Limit > 0 {
		end = clamp(start+*tf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

func (r *InMemoryLedgerRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = []models.Transaction{}
}
