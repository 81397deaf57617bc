package repo

import (
	"github.com/Gangesh855/factory-ops/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
type InMemoryItemRepository struct {
	items  []models.Item
	nextID int
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items:  []models.Item{},
		nextID: 1,
	}
}

func (r *InMemoryItemRepository) Create(item models.Item) (models.Item, error) {
	for _, i := range r.items {
		if i.StoreID == item.StoreID && i.SKU == item.SKU {
			return models.Item{}, ErrDuplicatedValueUnique
		}
	}
	item.ID = r.nextID
	item.Active = true
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryItemRepository) GetByID(id int) (models.Item, error) {
	for _, i := range r.items {
		if i.ID == id && i.Active {
			return i, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) GetByStoreID(storeID int) ([]models.Item, error) {
	var items []models.Item
	for _, i := range r.items {
		if i.StoreID == storeID && i.Active {
			items = append(items, i)
		}
	}
	return items, nil
}

func (r *InMemoryItemRepository) Update(item models.Item) (models.Item, error) {
	for idx, i := range r.items {
		if i.ID == item.ID && i.Active {
			// Quantity stays whatever the ledger last wrote.
			item.Quantity = i.Quantity
			item.Active = true
			r.items[idx] = item
			return item, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Deactivate(id int) error {
	for idx, i := range r.items {
		if i.ID == id && i.Active {
			r.items[idx].Active = false
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryItemRepository) LowStock(storeID int) ([]models.Item, error) {
	var items []models.Item
	for _, i := range r.items {
		if i.StoreID == storeID && i.Active && i.Quantity <= i.ReorderLevel {
			items = append(items, i)
		}
	}
	return items, nil
}

func (r *InMemoryItemRepository) Clear() {
	r.items = []models.Item{}
	r.nextID = 1
}

// setQuantity is the only write path for stock levels; it exists for the
// in-memory ledger, which holds the lock while calling it.
func (r *InMemoryItemRepository) setQuantity(id, quantity int) {
	for idx, i := range r.items {
		if i.ID == id {
			r.items[idx].Quantity = quantity
			return
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
