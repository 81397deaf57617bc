// Package ledger is the single entry point for stock changes. Every feature
// that moves inventory (manual transactions, initial stock on item creation,
// purchase-order receipts) funnels through Service.ApplyTransaction so the
// append-only transaction log stays consistent with the cached quantities.
package ledger

import (
	"errors"
	"fmt"

	"github.com/Gangesh855/factory-ops/internal/models"
	"github.com/Gangesh855/factory-ops/internal/repo"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidQuantity        = errors.New("quantity must be a positive integer")
)

// Request describes one stock change against one item.
type Request struct {
	ItemID        int
	Type          string
	Quantity      int
	ReferenceType string
	ReferenceID   int
	Notes         string
	ActorID       int
}

type Service struct {
	items  repo.ItemRepository
	ledger repo.LedgerRepository
	audit  repo.AuditRepository
}

func NewService(items repo.ItemRepository, ledgerRepo repo.LedgerRepository, audit repo.AuditRepository) *Service {
	return &Service{items: items, ledger: ledgerRepo, audit: audit}
}

// Delta maps a transaction type to its signed quantity change. IN and RETURN
// add stock; OUT and ADJUST subtract it. ADJUST as a decrement matches the
// legacy system's behavior and was kept deliberately.
func Delta(transactionType string, quantity int) (int, error) {
	switch transactionType {
	case models.TransactionIn, models.TransactionReturn:
		return quantity, nil
	case models.TransactionOut, models.TransactionAdjust:
		return -quantity, nil
	}
	return 0, ErrInvalidTransactionType
}

// ApplyTransaction validates the request and applies it atomically: the item
// quantity update and the ledger row commit together or not at all. On any
// error no state changes.
func (s *Service) ApplyTransaction(req Request) (models.Transaction, error) {
	if req.Quantity <= 0 {
		return models.Transaction{}, ErrInvalidQuantity
	}
	delta, err := Delta(req.Type, req.Quantity)
	if err != nil {
		return models.Transaction{}, err
	}

	entry := models.Transaction{
		ItemID:        req.ItemID,
		Type:          req.Type,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Notes:         req.Notes,
		CreatedBy:     req.ActorID,
	}

	applied, err := s.ledger.Apply(req.ItemID, delta, entry)
	if err != nil {
		return models.Transaction{}, err
	}

	// Best effort: the ledger row is already the authoritative record.
	_ = s.audit.Log(models.AuditEntry{
		Entity:   "inventory_items",
		Action:   "TRANSACTION",
		EntityID: req.ItemID,
		OldValue: fmt.Sprintf("%d", applied.ResultingQuantity-delta),
		NewValue: fmt.Sprintf("%d", applied.ResultingQuantity),
		ActorID:  req.ActorID,
	})

	return applied, nil
}

// CreateItem creates the item at zero stock and records the opening balance
// as an ordinary IN transaction, so replaying the ledger from zero always
// reproduces the current quantity.
func (s *Service) CreateItem(item models.Item, initialQuantity, actorID int) (models.Item, error) {
	if initialQuantity < 0 {
		return models.Item{}, ErrInvalidQuantity
	}

	item.Quantity = 0
	created, err := s.items.Create(item)
	if err != nil {
		return models.Item{}, err
	}

	if initialQuantity > 0 {
		applied, err := s.ApplyTransaction(Request{
			ItemID:   created.ID,
			Type:     models.TransactionIn,
			Quantity: initialQuantity,
			Notes:    "Initial stock",
			ActorID:  actorID,
		})
		if err != nil {
			return models.Item{}, err
		}
		created.Quantity = applied.ResultingQuantity
	}

	return created, nil
}

// ReceivePurchaseOrder books each received line as an IN transaction
// referencing the purchase order, then marks the order received. Each line
// is its own atomic ledger application.
func (s *Service) ReceivePurchaseOrder(orders repo.PurchaseOrderRepository, poID int, received map[int]int, actorID int) error {
	po, lines, err := orders.GetByID(poID)
	if err != nil {
		return err
	}

	lineItems := map[int]models.PurchaseOrderItem{}
	for _, line := range lines {
		lineItems[line.ID] = line
	}

	for lineID, quantity := range received {
		line, ok := lineItems[lineID]
		if !ok {
			return fmt.Errorf("line %d does not belong to purchase order %d", lineID, poID)
		}
		_, err := s.ApplyTransaction(Request{
			ItemID:        line.ItemID,
			Type:          models.TransactionIn,
			Quantity:      quantity,
			ReferenceType: "PURCHASE_ORDER",
			ReferenceID:   poID,
			Notes:         fmt.Sprintf("Received from PO %s", po.PONumber),
			ActorID:       actorID,
		})
		if err != nil {
			return err
		}
	}

	return orders.MarkReceived(poID, received)
}
