package repo

import (
	"errors"

	"github.com/Gangesh855/factory-ops/internal/models"
)

var ErrPurchaseOrderNotFound = errors.New("purchase order not found")

type PurchaseOrderRepository interface {
	Create(po models.PurchaseOrder, lines []models.PurchaseOrderItem) (models.PurchaseOrder, error)
	GetByID(id int) (models.PurchaseOrder, []models.PurchaseOrderItem, error)
	// MarkReceived records per-line received quantities and flips the order
	// to RECEIVED. Stock itself is not touched here: the caller funnels every
	// received line through the inventory ledger.
	MarkReceived(id int, received map[int]int) error
}
