package handlers

type StoreRequest struct {
	Name          string `json:"name"`
	Location      string `json:"location"`
	CapacityUnits int    `json:"capacity_units"`
	Description   string `json:"description"`
}

type StoreStats struct {
	TotalItems    int     `json:"total_items"`
	LowStockItems int     `json:"low_stock_items"`
	TotalValue    float64 `json:"total_value"`
}

type StoreDetailResponse struct {
	Store any        `json:"store"`
	Items any        `json:"items"`
	Stats StoreStats `json:"stats"`
}

type ItemRequest struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	UnitOfMeasure string  `json:"unit_of_measure"`
	Quantity      int     `json:"quantity"`
	ReorderLevel  int     `json:"reorder_level"`
	MaxQuantity   int     `json:"max_quantity"`
	UnitCost      float64 `json:"unit_cost"`
}

type ItemResponse struct {
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
	LowStock      bool    `json:"low_stock,omitempty"`
}

type TransactionRequest struct {
	TransactionType string `json:"transaction_type"`
	Quantity        int    `json:"quantity"`
	ReferenceType   string `json:"reference_type,omitempty"`
	ReferenceID     int    `json:"reference_id,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type TransactionResult struct {
	Success       bool `json:"success"`
	NewQuantity   int  `json:"new_quantity"`
	TransactionID int  `json:"transaction_id"`
}

type TransactionResponse struct {
	ID                int    `json:"id"`
	ItemID            int    `json:"item_id"`
	TransactionType   string `json:"transaction_type"`
	Quantity          int    `json:"quantity"`
	ResultingQuantity int    `json:"resulting_quantity"`
	ReferenceType     string `json:"reference_type,omitempty"`
	ReferenceID       int    `json:"reference_id,omitempty"`
	Notes             string `json:"notes,omitempty"`
	CreatedBy         int    `json:"created_by"`
	CreatedAt         string `json:"created_at"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type TransactionsSearchResult struct {
	Data []TransactionResponse `json:"data"`
	Meta Meta                  `json:"meta,omitempty"`
}

type PurchaseOrderLineRequest struct {
	ItemID          int     `json:"item_id"`
	OrderedQuantity int     `json:"ordered_quantity"`
	UnitCost        float64 `json:"unit_cost"`
}

type PurchaseOrderRequest struct {
	PONumber             string                     `json:"po_number"`
	SupplierName         string                     `json:"supplier_name"`
	ExpectedDeliveryDate string                     `json:"expected_delivery_date,omitempty"`
	Lines                []PurchaseOrderLineRequest `json:"lines"`
}

type ReceivedLine struct {
	POItemID         int `json:"po_item_id"`
	ReceivedQuantity int `json:"received_quantity"`
}

type ReceivePurchaseOrderRequest struct {
	ReceivedItems []ReceivedLine `json:"received_items"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
