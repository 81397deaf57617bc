package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Gangesh855/factory-ops/internal/models"
	repo "github.com/Gangesh855/factory-ops/internal/repo"
)

// CreatePurchaseOrderHandler godoc
// @Summary Create a purchase order
// @Tags purchases
// @Accept json
// @Produce json
// @Param order body PurchaseOrderRequest true "Purchase order"
// @Success 201 {object} models.PurchaseOrder
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /purchase-orders [post]
// @Security BearerAuth
func CreatePurchaseOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req PurchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.PONumber) == "" || strings.TrimSpace(req.SupplierName) == "" {
		http.Error(w, "PO number and supplier required", http.StatusBadRequest)
		return
	}
	if len(req.Lines) == 0 {
		http.Error(w, "at least one order line required", http.StatusBadRequest)
		return
	}
	for _, line := range req.Lines {
		if line.OrderedQuantity <= 0 {
			http.Error(w, "ordered quantity must be positive", http.StatusBadRequest)
			return
		}
	}

	lines := make([]models.PurchaseOrderItem, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = models.PurchaseOrderItem{
			ItemID:          line.ItemID,
			OrderedQuantity: line.OrderedQuantity,
			UnitCost:        line.UnitCost,
		}
	}

	po, err := poRepo.Create(models.PurchaseOrder{
		PONumber:             req.PONumber,
		SupplierName:         req.SupplierName,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		CreatedBy:            actorID(r),
	}, lines)
	if err != nil {
		log.Printf("could not create purchase order: %v", err)
		http.Error(w, "could not create purchase order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, po)
}

// GetPurchaseOrderHandler godoc
// @Summary Get a purchase order with its lines
// @Tags purchases
// @Produce json
// @Param id path int true "Purchase order ID"
// @Success 200 {object} map[string]any
// @Failure 404 {string} string "Purchase order not found"
// @Router /purchase-orders/{id} [get]
// @Security BearerAuth
func GetPurchaseOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid purchase order ID", http.StatusBadRequest)
		return
	}

	po, lines, err := poRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrPurchaseOrderNotFound) {
			http.Error(w, "purchase order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not retrieve purchase order", http.StatusInternalServerError)
		return
	}

	if lines == nil {
		lines = []models.PurchaseOrderItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"order": po,
		"lines": lines,
	})
}

// ReceivePurchaseOrderHandler godoc
// @Summary Receive a purchase order into stock
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path int true "Purchase order ID"
// @Param received body ReceivePurchaseOrderRequest true "Received quantities per line"
// @Success 200 {object} map[string]any
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Purchase order not found"
// @Failure 500 {string} string "Internal error"
// @Router /purchase-orders/{id}/receive [post]
// @Security BearerAuth
func ReceivePurchaseOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid purchase order ID", http.StatusBadRequest)
		return
	}

	var req ReceivePurchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if len(req.ReceivedItems) == 0 {
		http.Error(w, "received_items required", http.StatusBadRequest)
		return
	}

	received := make(map[int]int, len(req.ReceivedItems))
	for _, line := range req.ReceivedItems {
		if line.ReceivedQuantity <= 0 {
			http.Error(w, "received quantity must be positive", http.StatusBadRequest)
			return
		}
		received[line.POItemID] = line.ReceivedQuantity
	}

	// Each line is booked as an IN transaction through the ledger, so the
	// transaction log carries the purchase-order reference.
	if err := ledgerSvc.ReceivePurchaseOrder(poRepo, id, received, actorID(r)); err != nil {
		if errors.Is(err, repo.ErrPurchaseOrderNotFound) {
			http.Error(w, "purchase order not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "received line references an unknown item", http.StatusBadRequest)
			return
		}
		log.Printf("could not receive purchase order %d: %v", id, err)
		http.Error(w, "could not receive purchase order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Purchase order received and inventory updated",
	})
}
