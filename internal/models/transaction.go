package models

const (
	TransactionIn     = "IN"
	TransactionOut    = "OUT"
	TransactionAdjust = "ADJUST"
	TransactionReturn = "RETURN"
)

// Transaction is one row of the append-only inventory ledger.
// ResultingQuantity is the item's quantity after this row was applied, so
// the history can be audited without replaying every prior row.
type Transaction struct {
	ID                int    `json:"id"`
	ItemID            int    `json:"item_id"`
	Type              string `json:"transaction_type"`
	Quantity          int    `json:"quantity"`
	ResultingQuantity int    `json:"resulting_quantity"`
	ReferenceType     string `json:"reference_type,omitempty"`
	ReferenceID       int    `json:"reference_id,omitempty"`
	Notes             string `json:"notes,omitempty"`
	CreatedBy         int    `json:"created_by"`
	CreatedAt         string `json:"created_at"`
}
