package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/Gangesh855/factory-ops/internal/http"
	handler "github.com/Gangesh855/factory-ops/internal/http/handlers"
	"github.com/Gangesh855/factory-ops/internal/models"
)

type purchaseOrderDetail struct {
	Order models.PurchaseOrder       `json:"order"`
	Lines []models.PurchaseOrderItem `json:"lines"`
}

func TestCreatePurchaseOrderHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	item := mustCreateItem(t, r, handler.ItemRequest{SKU: "ROD-5", Name: "Steel Rod", Quantity: 3})

	w := doRequest(r, http.MethodPost, "/purchase-orders", handler.PurchaseOrderRequest{
		PONumber:     "PO-1001",
		SupplierName: "Acme Metals",
		Lines: []handler.PurchaseOrderLineRequest{
			{ItemID: item.ID, OrderedQuantity: 20, UnitCost: 1.5},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var po models.PurchaseOrder
	if err := json.NewDecoder(w.Body).Decode(&po); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if po.Status != models.PurchaseOrderPending {
		t.Errorf("expected status PENDING, got %v", po.Status)
	}
	if po.PONumber != "PO-1001" {
		t.Errorf("expected po_number 'PO-1001', got %v", po.PONumber)
	}
}

func TestCreatePurchaseOrderHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name    string
		payload handler.PurchaseOrderRequest
	}{
		{
			name:    "Missing po number",
			payload: handler.PurchaseOrderRequest{SupplierName: "Acme", Lines: []handler.PurchaseOrderLineRequest{{ItemID: 1, OrderedQuantity: 5}}},
		},
		{
			name:    "No lines",
			payload: handler.PurchaseOrderRequest{PONumber: "PO-1002", SupplierName: "Acme"},
		},
		{
			name:    "Non-positive quantity",
			payload: handler.PurchaseOrderRequest{PONumber: "PO-1003", SupplierName: "Acme", Lines: []handler.PurchaseOrderLineRequest{{ItemID: 1, OrderedQuantity: 0}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/purchase-orders", tt.payload, token)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestReceivePurchaseOrderHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	item := mustCreateItem(t, r, handler.ItemRequest{SKU: "ROD-5", Name: "Steel Rod", Quantity: 3})

	w := doRequest(r, http.MethodPost, "/purchase-orders", handler.PurchaseOrderRequest{
		PONumber:     "PO-1001",
		SupplierName: "Acme Metals",
		Lines: []handler.PurchaseOrderLineRequest{
			{ItemID: item.ID, OrderedQuantity: 20, UnitCost: 1.5},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var po models.PurchaseOrder
	if err := json.NewDecoder(w.Body).Decode(&po); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	wDetail := doRequest(r, http.MethodGet, fmt.Sprintf("/purchase-orders/%d", po.ID), nil, token)
	var detail purchaseOrderDetail
	if err := json.NewDecoder(wDetail.Body).Decode(&detail); err != nil {
		t.Fatalf("error decoding detail response: %v", err)
	}
	if len(detail.Lines) != 1 {
		t.Fatalf("expected 1 order line, got %d", len(detail.Lines))
	}

	wReceive := doRequest(r, http.MethodPost, fmt.Sprintf("/purchase-orders/%d/receive", po.ID), handler.ReceivePurchaseOrderRequest{
		ReceivedItems: []handler.ReceivedLine{
			{POItemID: detail.Lines[0].ID, ReceivedQuantity: 20},
		},
	}, token)
	if wReceive.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", wReceive.Code, wReceive.Body.String())
	}

	// Stock went up through the ledger, with the PO reference attached.
	wItem := doRequest(r, http.MethodGet, fmt.Sprintf("/items/%d", item.ID), nil, token)
	var after handler.ItemResponse
	if err := json.NewDecoder(wItem.Body).Decode(&after); err != nil {
		t.Fatalf("error decoding item response: %v", err)
	}
	if after.Quantity != 23 {
		t.Errorf("expected quantity 23 after receiving, got %d", after.Quantity)
	}

	result := getTransactions(t, r, item.ID, "")
	last := result.Data[len(result.Data)-1]
	if last.TransactionType != models.TransactionIn || last.ReferenceType != "PURCHASE_ORDER" || last.ReferenceID != po.ID {
		t.Errorf("expected receipt row IN referencing PURCHASE_ORDER %d, got %+v", po.ID, last)
	}

	wDetail = doRequest(r, http.MethodGet, fmt.Sprintf("/purchase-orders/%d", po.ID), nil, token)
	if err := json.NewDecoder(wDetail.Body).Decode(&detail); err != nil {
		t.Fatalf("error decoding detail response: %v", err)
	}
	if detail.Order.Status != models.PurchaseOrderReceived {
		t.Errorf("expected status RECEIVED, got %v", detail.Order.Status)
	}
	if detail.Lines[0].ReceivedQuantity != 20 {
		t.Errorf("expected received_quantity 20, got %d", detail.Lines[0].ReceivedQuantity)
	}
}

func TestReceivePurchaseOrderHandler_UnknownOrder(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/purchase-orders/9999/receive", handler.ReceivePurchaseOrderRequest{
		ReceivedItems: []handler.ReceivedLine{{POItemID: 1, ReceivedQuantity: 5}},
	}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestReceivePurchaseOrderHandler_NoLines(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/purchase-orders/1/receive", handler.ReceivePurchaseOrderRequest{}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}
