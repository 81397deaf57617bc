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

func TestCreateStoreHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createStore(r, handler.StoreRequest{Name: "North Plant", Location: "Building 4", CapacityUnits: 5000})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var store models.Store
	if err := json.NewDecoder(w.Body).Decode(&store); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if store.Name != "North Plant" {
		t.Errorf("expected name 'North Plant', got %v", store.Name)
	}
	if store.ID == 0 {
		t.Error("expected a store id")
	}
}

func TestCreateStoreHandler_MissingName(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createStore(r, handler.StoreRequest{Location: "Building 4"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetStoresHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	createStore(r, handler.StoreRequest{Name: "North Plant"})
	createStore(r, handler.StoreRequest{Name: "South Plant"})

	w := doRequest(r, http.MethodGet, "/stores", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var stores []models.Store
	if err := json.NewDecoder(w.Body).Decode(&stores); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(stores) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(stores))
	}
}

func TestGetStoreByIDHandler_Stats(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	ws := createStore(r, handler.StoreRequest{Name: "North Plant"})
	var store models.Store
	if err := json.NewDecoder(ws.Body).Decode(&store); err != nil {
		t.Fatalf("error decoding store response: %v", err)
	}

	createItem(r, store.ID, handler.ItemRequest{SKU: "OK-1", Name: "Well Stocked", Quantity: 10, ReorderLevel: 3, UnitCost: 2.5})
	createItem(r, store.ID, handler.ItemRequest{SKU: "LOW-1", Name: "Running Out", Quantity: 4, ReorderLevel: 5, UnitCost: 1.0})

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/stores/%d", store.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var detail handler.StoreDetailResponse
	if err := json.NewDecoder(w.Body).Decode(&detail); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if detail.Stats.TotalItems != 2 {
		t.Errorf("expected total_items 2, got %d", detail.Stats.TotalItems)
	}
	if detail.Stats.LowStockItems != 1 {
		t.Errorf("expected low_stock_items 1, got %d", detail.Stats.LowStockItems)
	}
	if detail.Stats.TotalValue != 29.0 { // 10*2.5 + 4*1.0
		t.Errorf("expected total_value 29.0, got %v", detail.Stats.TotalValue)
	}
}

func TestGetStoreByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRequest(r, http.MethodGet, "/stores/9999", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}
