package repo

import (
	"time"

	"github.com/Gangesh855/factory-ops/internal/models"
)

type InMemoryPurchaseOrderRepository struct {
	orders     []models.PurchaseOrder
	lines      []models.PurchaseOrderItem
	nextID     int
	nextLineID int
}

func NewInMemoryPurchaseOrderRepository() *InMemoryPurchaseOrderRepository {
	return &InMemoryPurchaseOrderRepository{nextID: 1, nextLineID: 1}
}

func (r *InMemoryPurchaseOrderRepository) Create(po models.PurchaseOrder, lines []models.PurchaseOrderItem) (models.PurchaseOrder, error) {
	po.ID = r.nextID
	po.Status = models.PurchaseOrderPending
	r.nextID++
	r.orders = append(r.orders, po)

	for _, line := range lines {
		line.ID = r.nextLineID
		line.POID = po.ID
		line.ReceivedQuantity = 0
		r.nextLineID++
		r.lines = append(r.lines, line)
	}
	return po, nil
}

func (r *InMemoryPurchaseOrderRepository) GetByID(id int) (models.PurchaseOrder, []models.PurchaseOrderItem, error) {
	for _, po := range r.orders {
		if po.ID == id {
			var lines []models.PurchaseOrderItem
			for _, line := range r.lines {
				if line.POID == id {
					lines = append(lines, line)
				}
			}
			return po, lines, nil
		}
	}
	return models.PurchaseOrder{}, nil, ErrPurchaseOrderNotFound
}

func (r *InMemoryPurchaseOrderRepository) MarkReceived(id int, received map[int]int) error {
	for idx, po := range r.orders {
		if po.ID == id {
			for lineIdx, line := range r.lines {
				if line.POID == id {
					if quantity, ok := received[line.ID]; ok {
						r.lines[lineIdx].ReceivedQuantity = quantity
					}
				}
			}
			r.orders[idx].Status = models.PurchaseOrderReceived
			r.orders[idx].ActualDeliveryDate = time.Now().UTC().Format(time.RFC3339)
			return nil
		}
	}
	return ErrPurchaseOrderNotFound
}

func (r *InMemoryPurchaseOrderRepository) Clear() {
	r.orders = nil
	r.lines = nil
	r.nextID = 1
	r.nextLineID = 1
}
