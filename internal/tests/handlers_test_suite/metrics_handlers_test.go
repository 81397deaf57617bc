package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/Gangesh855/factory-ops/internal/http"
	handler "github.com/Gangesh855/factory-ops/internal/http/handlers"
	"github.com/Gangesh855/factory-ops/internal/models"
	"github.com/Gangesh855/factory-ops/internal/repo"
)

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	ws := createStore(r, handler.StoreRequest{Name: "Main Warehouse"})
	var store models.Store
	if err := json.NewDecoder(ws.Body).Decode(&store); err != nil {
		t.Fatalf("error decoding store response: %v", err)
	}

	createItem(r, store.ID, handler.ItemRequest{SKU: "OK-1", Name: "Well Stocked", Quantity: 10, ReorderLevel: 3})

	wi := createItem(r, store.ID, handler.ItemRequest{SKU: "BUSY-1", Name: "Busy Item", Quantity: 50, ReorderLevel: 3})
	var busy handler.ItemResponse
	if err := json.NewDecoder(wi.Body).Decode(&busy); err != nil {
		t.Fatalf("error decoding item response: %v", err)
	}
	for i := 0; i < 3; i++ {
		w := applyTransaction(r, busy.ID, handler.TransactionRequest{TransactionType: models.TransactionOut, Quantity: 1})
		if w.Code != http.StatusCreated {
			t.Fatalf("transaction %d: expected 201 Created, got %d", i, w.Code)
		}
	}

	w := doRequest(r, http.MethodGet, "/metrics/dashboard", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if m.TotalItems != 2 {
		t.Errorf("expected 2 items, got %d", m.TotalItems)
	}
	// Two initial INs plus three OUTs.
	if m.TotalTransactions != 5 {
		t.Errorf("expected 5 transactions, got %d", m.TotalTransactions)
	}
	if m.MostMovedItem.SKU != "BUSY-1" {
		t.Errorf("expected most moved item BUSY-1, got %q", m.MostMovedItem.SKU)
	}
	if m.MostMovedItem.TransactionCount != 4 {
		t.Errorf("expected 4 transactions for most moved item, got %d", m.MostMovedItem.TransactionCount)
	}
}

func TestGetDashboardMetricsHandler_Forbidden(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	viewerToken, err := generateToken(r, "viewer", "secret")
	if err != nil {
		t.Fatalf("error generating viewer token: %v", err)
	}

	w := doRequest(r, http.MethodGet, "/metrics/dashboard", nil, viewerToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 Forbidden, got %d", w.Code)
	}
}
