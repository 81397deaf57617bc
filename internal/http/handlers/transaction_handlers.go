package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Gangesh855/factory-ops/internal/alerts"
	"github.com/Gangesh855/factory-ops/internal/ledger"
	"github.com/Gangesh855/factory-ops/internal/models"
	repo "github.com/Gangesh855/factory-ops/internal/repo"
)

// ApplyTransactionHandler godoc
// @Summary Record an inventory transaction against an item
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param transaction body TransactionRequest true "Transaction to record"
// @Success 201 {object} TransactionResult
// @Failure 400 {string} string "Invalid transaction or insufficient stock"
// @Failure 404 {string} string "Item not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id}/transactions [post]
// @Security BearerAuth
func ApplyTransactionHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	applied, err := ledgerSvc.ApplyTransaction(ledger.Request{
		ItemID:        id,
		Type:          req.TransactionType,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Notes:         req.Notes,
		ActorID:       actorID(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrItemNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, ledger.ErrInvalidTransactionType):
			http.Error(w, "invalid transaction type", http.StatusBadRequest)
		case errors.Is(err, ledger.ErrInvalidQuantity):
			http.Error(w, "quantity must be a positive integer", http.StatusBadRequest)
		case errors.Is(err, repo.ErrInsufficientStock):
			http.Error(w, "insufficient stock", http.StatusBadRequest)
		default:
			log.Printf("could not record transaction for item %d: %v", id, err)
			http.Error(w, "could not record transaction", http.StatusInternalServerError)
		}
		return
	}

	if item, err := itemRepo.GetByID(id); err == nil && item.Quantity <= item.ReorderLevel {
		log.Printf("⚠️ ALERT: Item %d (%s) is at or below reorder level! Qty=%d, Reorder=%d",
			item.ID, item.SKU, item.Quantity, item.ReorderLevel)
		_ = alerts.SendLowStockAlertEmail(item)
	}

	writeJSON(w, http.StatusCreated, TransactionResult{
		Success:       true,
		NewQuantity:   applied.ResultingQuantity,
		TransactionID: applied.ID,
	})
}

// GetTransactionsHandler godoc
// @Summary Get the transaction ledger for an item
// @Tags transactions
// @Produce json
// @Param id path int true "Item ID"
// @Param since query string false "Filter transactions from this timestamp (RFC3339)"
// @Param until query string false "Filter transactions until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} TransactionsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Item not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id}/transactions [get]
// @Security BearerAuth
func GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	if _, err := itemRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
	}

	tf, ok := parseTransactionFilter(w, r)
	if !ok {
		return
	}

	transactions, total, err := ledgerRepo.GetByItemID(id, tf)
	if err != nil {
		log.Printf("could not retrieve transactions for item %d: %v", id, err)
		http.Error(w, "could not retrieve transactions", http.StatusInternalServerError)
		return
	}

	response := TransactionsSearchResult{
		Data: make([]TransactionResponse, len(transactions)),
		Meta: Meta{TotalCount: total},
	}
	for i, t := range transactions {
		response.Data[i] = transactionResponse(t)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ExportTransactionsHandler godoc
// @Summary Export the transaction ledger for an item
// @Tags transactions
// @Produce text/csv, application/json
// @Param id path int true "Item ID"
// @Param format query string true "Export format (csv or json)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id}/transactions/export [get]
// @Security BearerAuth
func ExportTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	since, until, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	transactions, _, err := ledgerRepo.GetByItemID(id, repo.TransactionFilter{Since: since, Until: until})
	if err != nil {
		http.Error(w, "could not retrieve transactions", http.StatusInternalServerError)
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.json"`)
		json.NewEncoder(w).Encode(transactions)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "item_id", "transaction_type", "quantity", "resulting_quantity", "reference_type", "reference_id", "created_at"})
		for _, t := range transactions {
			_ = csvWriter.Write([]string{
				strconv.Itoa(t.ID),
				strconv.Itoa(t.ItemID),
				t.Type,
				strconv.Itoa(t.Quantity),
				strconv.Itoa(t.ResultingQuantity),
				t.ReferenceType,
				strconv.Itoa(t.ReferenceID),
				t.CreatedAt,
			})
		}
		csvWriter.Flush()
	}
}

func transactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		ItemID:            t.ItemID,
		TransactionType:   t.Type,
		Quantity:          t.Quantity,
		ResultingQuantity: t.ResultingQuantity,
		ReferenceType:     t.ReferenceType,
		ReferenceID:       t.ReferenceID,
		Notes:             t.Notes,
		CreatedBy:         t.CreatedBy,
		CreatedAt:         t.CreatedAt,
	}
}

// parseDateRange reads since/until query parameters. URL query decoding turns
// the + of an RFC3339 zone offset into a space, so that substitution is
// reversed before parsing.
func parseDateRange(w http.ResponseWriter, r *http.Request) (since, until *time.Time, ok bool) {
	sinceStr := r.URL.Query().Get("since")
	untilStr := r.URL.Query().Get("until")

	if len(sinceStr) == len(time.RFC3339) && sinceStr[len(sinceStr)-6] == ' ' {
		sinceStr = sinceStr[:len(sinceStr)-6] + "+" + sinceStr[len(sinceStr)-5:]
	}
	if len(untilStr) == len(time.RFC3339) && untilStr[len(untilStr)-6] == ' ' {
		untilStr = untilStr[:len(untilStr)-6] + "+" + untilStr[len(untilStr)-5:]
	}

	if sinceStr != "" {
		ts, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			log.Printf("could not parse since date %s: %v", sinceStr, err)
			http.Error(w, "invalid since date format", http.StatusBadRequest)
			return nil, nil, false
		}
		since = &ts
	}
	if untilStr != "" {
		ts, err := time.Parse(time.RFC3339, untilStr)
		if err != nil {
			log.Printf("could not parse until date %s: %v", untilStr, err)
			http.Error(w, "invalid until date format", http.StatusBadRequest)
			return nil, nil, false
		}
		until = &ts
	}
	return since, until, true
}

func parseTransactionFilter(w http.ResponseWriter, r *http.Request) (repo.TransactionFilter, bool) {
	var tf repo.TransactionFilter

	since, until, ok := parseDateRange(w, r)
	if !ok {
		return tf, false
	}
	tf.Since = since
	tf.Until = until

	limitStr := r.URL.Query().Get("limit")
	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil {
			log.Printf("could not parse limit %s: %v", limitStr, err)
			http.Error(w, "invalid limit format", http.StatusBadRequest)
			return tf, false
		}
		if v <= 0 {
			log.Printf("invalid limit %d, must be greater than zero", v)
			http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
			return tf, false
		}
		tf.Limit = &v
	}

	offsetStr := r.URL.Query().Get("offset")
	if offsetStr != "" {
		v, err := strconv.Atoi(offsetStr)
		if err != nil {
			log.Printf("could not parse offset %s: %v", offsetStr, err)
			http.Error(w, "invalid offset format", http.StatusBadRequest)
			return tf, false
		}
		if v < 0 {
			log.Printf("invalid offset %d, must be zero or positive", v)
			http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
			return tf, false
		}
		tf.Offset = &v
	}

	return tf, true
}
