package repo

type InMemoryMetricsRepository struct {
	items  *InMemoryItemRepository
	ledger *InMemoryLedgerRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) SetRepositories(items *InMemoryItemRepository, ledger *InMemoryLedgerRepository) {
	r.items = items
	r.ledger = ledger
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	var m Metrics

	counts := map[int]int{}
	skus := map[int]string{}
	for _, i := range r.items.items {
		if !i.Active {
			continue
		}
		m.TotalItems++
		if i.Quantity <= i.ReorderLevel {
			m.LowStockCount++
		}
		skus[i.ID] = i.SKU
	}

	for _, t := range r.ledger.transactions {
		m.TotalTransactions++
		counts[t.ItemID]++
	}

	for itemID, count := range counts {
		if count > m.MostMovedItem.TransactionCount {
			m.MostMovedItem = MostMovedItem{SKU: skus[itemID], TransactionCount: count}
		}
	}

	return m, nil
}
