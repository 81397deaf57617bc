package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	api "github.com/Gangesh855/factory-ops/internal/http"
	handler "github.com/Gangesh855/factory-ops/internal/http/handlers"
	"github.com/Gangesh855/factory-ops/internal/models"
)

func TestCreateItemHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	item := mustCreateItem(t, r, handler.ItemRequest{
		SKU:          "BOLT-9",
		Name:         "Hex Bolt",
		Quantity:     10,
		ReorderLevel: 3,
		UnitCost:     0.25,
	})

	if item.SKU != "BOLT-9" {
		t.Errorf("expected sku 'BOLT-9', got %v", item.SKU)
	}
	if item.Quantity != 10 {
		t.Errorf("expected quantity 10, got %v", item.Quantity)
	}

	// The opening balance shows up in the ledger as a plain IN.
	result := getTransactions(t, r, item.ID, "")
	if len(result.Data) != 1 {
		t.Fatalf("expected 1 ledger row, got %d", len(result.Data))
	}
	first := result.Data[0]
	if first.TransactionType != models.TransactionIn || first.Quantity != 10 || first.ResultingQuantity != 10 {
		t.Errorf("expected initial IN 10 -> 10, got %+v", first)
	}
	if first.Notes != "Initial stock" {
		t.Errorf("expected notes 'Initial stock', got %q", first.Notes)
	}
}

func TestCreateItemHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	ws := createStore(r, handler.StoreRequest{Name: "Main Warehouse"})
	var store models.Store
	if err := json.NewDecoder(ws.Body).Decode(&store); err != nil {
		t.Fatalf("error decoding store response: %v", err)
	}

	tests := []struct {
		name           string
		payload        handler.ItemRequest
		expectedErrors []string
	}{
		{
			name:           "Empty sku and name",
			payload:        handler.ItemRequest{},
			expectedErrors: []string{"SKU", "Name"},
		},
		{
			name:           "Negative quantity",
			payload:        handler.ItemRequest{SKU: "NUT-3", Name: "Nut", Quantity: -1},
			expectedErrors: []string{"Quantity"},
		},
		{
			name:           "Negative unit cost",
			payload:        handler.ItemRequest{SKU: "NUT-3", Name: "Nut", UnitCost: -0.5},
			expectedErrors: []string{"UnitCost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createItem(r, store.ID, tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ItemValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateItemHandler_StoreNotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createItem(r, 9999, handler.ItemRequest{SKU: "BOLT-9", Name: "Hex Bolt"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestCreateItemHandler_DuplicateSKU(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	item := mustCreateItem(t, r, handler.ItemRequest{SKU: "BOLT-9", Name: "Hex Bolt"})

	w := createItem(r, item.StoreID, handler.ItemRequest{SKU: "BOLT-9", Name: "Another Bolt"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestUpdateItemHandler_QuantityUntouched(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	item := mustCreateItem(t, r, handler.ItemRequest{SKU: "BOLT-9", Name: "Hex Bolt", Quantity: 10})

	// Quantity in the payload must be ignored; stock only moves through
	// transactions.
	w := doRequest(r, http.MethodPut, fmt.Sprintf("/items/%d", item.ID), handler.ItemRequest{
		SKU:      "BOLT-9",
		Name:     "Hex Bolt M8",
		Quantity: 999,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var updated handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Name != "Hex Bolt M8" {
		t.Errorf("expected name 'Hex Bolt M8', got %v", updated.Name)
	}
	if updated.Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", updated.Quantity)
	}
}

func TestDeactivateItemHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	item := mustCreateItem(t, r, handler.ItemRequest{SKU: "BOLT-9", Name: "Hex Bolt", Quantity: 10})

	w := doRequest(r, http.MethodDelete, fmt.Sprintf("/items/%d", item.ID), nil, token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/items/%d", item.ID), nil, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for deactivated item, got %d", w.Code)
	}

	// A deactivated item no longer accepts transactions.
	w = applyTransaction(r, item.ID, handler.TransactionRequest{TransactionType: models.TransactionIn, Quantity: 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 applying transaction to deactivated item, got %d", w.Code)
	}
}

func TestGetLowStockHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	ws := createStore(r, handler.StoreRequest{Name: "Main Warehouse"})
	var store models.Store
	if err := json.NewDecoder(ws.Body).Decode(&store); err != nil {
		t.Fatalf("error decoding store response: %v", err)
	}

	createItem(r, store.ID, handler.ItemRequest{SKU: "OK-1", Name: "Well Stocked", Quantity: 10, ReorderLevel: 3})
	createItem(r, store.ID, handler.ItemRequest{SKU: "LOW-1", Name: "Running Out", Quantity: 2, ReorderLevel: 5})

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/stores/%d/low-stock", store.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var items []handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 low stock item, got %d", len(items))
	}
	if items[0].SKU != "LOW-1" || !items[0].LowStock {
		t.Errorf("expected LOW-1 flagged as low stock, got %+v", items[0])
	}
}
