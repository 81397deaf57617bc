package models

const (
	PurchaseOrderPending  = "PENDING"
	PurchaseOrderReceived = "RECEIVED"
)

type PurchaseOrder struct {
	ID                   int    `json:"id"`
	PONumber             string `json:"po_number"`
	SupplierName         string `json:"supplier_name"`
	Status               string `json:"status"`
	ExpectedDeliveryDate string `json:"expected_delivery_date,omitempty"`
	ActualDeliveryDate   string `json:"actual_delivery_date,omitempty"`
	CreatedBy            int    `json:"created_by"`
	CreatedAt            string `json:"created_at,omitempty"`
	UpdatedAt            string `json:"updated_at,omitempty"`
}

type PurchaseOrderItem struct {
	ID               int     `json:"id"`
	POID             int     `json:"po_id"`
	ItemID           int     `json:"item_id"`
	OrderedQuantity  int     `json:"ordered_quantity"`
	ReceivedQuantity int     `json:"received_quantity"`
	UnitCost         float64 `json:"unit_cost"`
}
