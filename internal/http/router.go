package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/Gangesh855/factory-ops/internal/auth"
	"github.com/Gangesh855/factory-ops/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/refresh", handlers.RefreshHandler)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.With(RequirePermission(auth.PermStoresView)).Get("/stores", handlers.GetStoresHandler)
	r.With(RequirePermission(auth.PermStoresCreate)).Post("/stores", handlers.CreateStoreHandler)
	r.With(RequirePermission(auth.PermStoresView)).Get("/stores/{id}", handlers.GetStoreByIDHandler)

	r.With(RequirePermission(auth.PermInventoryView)).Get("/stores/{id}/inventory", handlers.GetStoreInventoryHandler)
	r.With(RequirePermission(auth.PermInventoryCreate)).Post("/stores/{id}/inventory", handlers.CreateItemHandler)
	r.With(RequirePermission(auth.PermInventoryView)).Get("/stores/{id}/low-stock", handlers.GetLowStockHandler)

	r.With(RequirePermission(auth.PermInventoryView)).Get("/items/{id}", handlers.GetItemByIDHandler)
	r.With(RequirePermission(auth.PermInventoryEdit)).Put("/items/{id}", handlers.UpdateItemHandler)
	r.With(RequirePermission(auth.PermInventoryEdit)).Delete("/items/{id}", handlers.DeactivateItemHandler)

	r.With(RequirePermission(auth.PermInventoryEdit)).Post("/items/{id}/transactions", handlers.ApplyTransactionHandler)
	r.With(RequirePermission(auth.PermInventoryView)).Get("/items/{id}/transactions", handlers.GetTransactionsHandler)
	r.With(RequirePermission(auth.PermInventoryView)).Get("/items/{id}/transactions/export", handlers.ExportTransactionsHandler)

	r.With(RequirePermission(auth.PermPurchasesCreate)).Post("/purchase-orders", handlers.CreatePurchaseOrderHandler)
	r.With(RequirePermission(auth.PermPurchasesView)).Get("/purchase-orders/{id}", handlers.GetPurchaseOrderHandler)
	r.With(RequirePermission(auth.PermPurchasesApprove)).Post("/purchase-orders/{id}/receive", handlers.ReceivePurchaseOrderHandler)

	r.With(RequirePermission(auth.PermInventoryView)).Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	return r
}
