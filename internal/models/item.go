package models

// Item represents a stock-keeping unit held at a store. Its quantity is
// only ever changed through the inventory ledger.
type Item struct {
	ID            int     `json:"id"`
	StoreID       int     `json:"store_id"`
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	UnitOfMeasure string  `json:"unit_of_measure,omitempty"`
	Quantity      int     `json:"quantity"`
	ReorderLevel  int     `json:"reorder_level"`
	MaxQuantity   int     `json:"max_quantity,omitempty"`
	UnitCost      float64 `json:"unit_cost"`
	Active        bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}
