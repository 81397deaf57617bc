package repo

import "time"

type TransactionFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}
