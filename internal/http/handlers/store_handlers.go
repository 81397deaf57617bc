package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Gangesh855/factory-ops/internal/models"
	repo "github.com/Gangesh855/factory-ops/internal/repo"
)

// GetStoresHandler godoc
// @Summary List active stores
// @Tags stores
// @Produce json
// @Success 200 {array} models.Store
// @Failure 500 {string} string "Internal error"
// @Router /stores [get]
// @Security BearerAuth
func GetStoresHandler(w http.ResponseWriter, r *http.Request) {
	stores, err := storeRepo.GetAll()
	if err != nil {
		http.Error(w, "could not retrieve stores", http.StatusInternalServerError)
		return
	}
	if stores == nil {
		stores = []models.Store{}
	}
	writeJSON(w, http.StatusOK, stores)
}

// CreateStoreHandler godoc
// @Summary Create a store
// @Tags stores
// @Accept json
// @Produce json
// @Param store body StoreRequest true "Store to create"
// @Success 201 {object} models.Store
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /stores [post]
// @Security BearerAuth
func CreateStoreHandler(w http.ResponseWriter, r *http.Request) {
	var req StoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "store name required", http.StatusBadRequest)
		return
	}

	store, err := storeRepo.Create(models.Store{
		Name:          req.Name,
		Location:      req.Location,
		CapacityUnits: req.CapacityUnits,
		Description:   req.Description,
	})
	if err != nil {
		http.Error(w, "could not create store", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, store)
}

// GetStoreByIDHandler godoc
// @Summary Get a store with its inventory and stats
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} StoreDetailResponse
// @Failure 404 {string} string "Store not found"
// @Failure 500 {string} string "Internal error"
// @Router /stores/{id} [get]
// @Security BearerAuth
func GetStoreByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid store ID", http.StatusBadRequest)
		return
	}

	store, err := storeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrStoreNotFound) {
			http.Error(w, "store not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not retrieve store", http.StatusInternalServerError)
		return
	}

	items, err := itemRepo.GetByStoreID(id)
	if err != nil {
		http.Error(w, "could not retrieve inventory", http.StatusInternalServerError)
		return
	}

	stats := StoreStats{TotalItems: len(items)}
	for _, i := range items {
		if i.Quantity <= i.ReorderLevel {
			stats.LowStockItems++
		}
		stats.TotalValue += float64(i.Quantity) * i.UnitCost
	}

	itemResponses := make([]ItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = itemResponse(item)
	}

	writeJSON(w, http.StatusOK, StoreDetailResponse{
		Store: store,
		Items: itemResponses,
		Stats: stats,
	})
}
