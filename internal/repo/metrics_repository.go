package repo

type MostMovedItem struct {
	SKU              string `json:"sku"`
	TransactionCount int    `json:"transaction_count"`
}

type Metrics struct {
	TotalItems        int           `json:"total_items"`
	TotalTransactions int           `json:"total_transactions"`
	LowStockCount     int           `json:"low_stock_count"`
	MostMovedItem     MostMovedItem `json:"most_moved_item"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
