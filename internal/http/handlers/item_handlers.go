package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Gangesh855/factory-ops/internal/models"
	repo "github.com/Gangesh855/factory-ops/internal/repo"
)

// CreateItemHandler godoc
// @Summary Create an inventory item in a store
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Store ID"
// @Param item body ItemRequest true "Item to create"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} []ItemValidationError
// @Failure 404 {string} string "Store not found"
// @Failure 409 {string} string "Duplicated SKU"
// @Failure 500 {string} string "Internal error"
// @Router /stores/{id}/inventory [post]
// @Security BearerAuth
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid store ID", http.StatusBadRequest)
		return
	}

	if _, err := storeRepo.GetByID(storeID); err != nil {
		http.Error(w, "store not found", http.StatusNotFound)
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateItem(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	item := models.Item{
		StoreID:       storeID,
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		UnitOfMeasure: req.UnitOfMeasure,
		ReorderLevel:  req.ReorderLevel,
		MaxQuantity:   req.MaxQuantity,
		UnitCost:      req.UnitCost,
	}

	// The initial stock is booked as an IN transaction so the ledger starts
	// consistent with the item.
	created, err := ledgerSvc.CreateItem(item, req.Quantity, actorID(r))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "SKU already exists in this store", http.StatusConflict)
			return
		}
		log.Printf("could not create item: %v", err)
		http.Error(w, "could not create item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, itemResponse(created))
}

// GetStoreInventoryHandler godoc
// @Summary List active inventory items in a store
// @Tags inventory
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {array} ItemResponse
// @Failure 404 {string} string "Store not found"
// @Failure 500 {string} string "Internal error"
// @Router /stores/{id}/inventory [get]
// @Security BearerAuth
func GetStoreInventoryHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid store ID", http.StatusBadRequest)
		return
	}

	if _, err := storeRepo.GetByID(storeID); err != nil {
		http.Error(w, "store not found", http.StatusNotFound)
		return
	}

	items, err := itemRepo.GetByStoreID(storeID)
	if err != nil {
		http.Error(w, "could not retrieve inventory", http.StatusInternalServerError)
		return
	}

	response := make([]ItemResponse, len(items))
	for i, item := range items {
		response[i] = itemResponse(item)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetItemByIDHandler godoc
// @Summary Get a single inventory item
// @Tags inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {string} string "Item not found"
// @Router /items/{id} [get]
// @Security BearerAuth
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	item, err := itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not retrieve item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, itemResponse(item))
}

// UpdateItemHandler godoc
// @Summary Update item metadata (never quantity)
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body ItemRequest true "Item metadata"
// @Success 200 {object} ItemResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Item not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id} [put]
// @Security BearerAuth
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	existing, err := itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not retrieve item", http.StatusInternalServerError)
		return
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.UnitOfMeasure = req.UnitOfMeasure
	existing.ReorderLevel = req.ReorderLevel
	existing.MaxQuantity = req.MaxQuantity
	existing.UnitCost = req.UnitCost

	updated, err := itemRepo.Update(existing)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, itemResponse(updated))
}

// DeactivateItemHandler godoc
// @Summary Soft-deactivate an inventory item
// @Tags inventory
// @Param id path int true "Item ID"
// @Success 204 {string} string "Deactivated"
// @Failure 404 {string} string "Item not found"
// @Router /items/{id} [delete]
// @Security BearerAuth
func DeactivateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	if err := itemRepo.Deactivate(id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not deactivate item", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetLowStockHandler godoc
// @Summary List items at or below their reorder level
// @Tags inventory
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {array} ItemResponse
// @Failure 404 {string} string "Store not found"
// @Router /stores/{id}/low-stock [get]
// @Security BearerAuth
func GetLowStockHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid store ID", http.StatusBadRequest)
		return
	}

	if _, err := storeRepo.GetByID(storeID); err != nil {
		http.Error(w, "store not found", http.StatusNotFound)
		return
	}

	items, err := itemRepo.LowStock(storeID)
	if err != nil {
		http.Error(w, "could not retrieve low stock items", http.StatusInternalServerError)
		return
	}

	response := make([]ItemResponse, len(items))
	for i, item := range items {
		response[i] = itemResponse(item)
	}
	writeJSON(w, http.StatusOK, response)
}

func itemResponse(i models.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		StoreID:       i.StoreID,
		SKU:           i.SKU,
		Name:          i.Name,
		Description:   i.Description,
		UnitOfMeasure: i.UnitOfMeasure,
		Quantity:      i.Quantity,
		ReorderLevel:  i.ReorderLevel,
		MaxQuantity:   i.MaxQuantity,
		UnitCost:      i.UnitCost,
		LowStock:      i.Quantity <= i.ReorderLevel,
	}
}
