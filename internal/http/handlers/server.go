package handlers

import (
	"time"

	"github.com/Gangesh855/factory-ops/internal/auth"
	"github.com/Gangesh855/factory-ops/internal/ledger"
	"github.com/Gangesh855/factory-ops/internal/redissvc"
	repo "github.com/Gangesh855/factory-ops/internal/repo"
)

var (
	storeRepo   repo.StoreRepository
	itemRepo    repo.ItemRepository
	ledgerRepo  repo.LedgerRepository
	poRepo      repo.PurchaseOrderRepository
	userRepo    repo.UserRepository
	metricsRepo repo.MetricsRepository

	ledgerSvc    *ledger.Service
	refreshStore *auth.RefreshStore
)

func SetStoreRepo(r repo.StoreRepository) {
	storeRepo = r
}

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetLedgerRepo(r repo.LedgerRepository) {
	ledgerRepo = r
}

func SetPurchaseOrderRepo(r repo.PurchaseOrderRepository) {
	poRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetLedgerService(s *ledger.Service) {
	ledgerSvc = s
}

// SetRedisService wires the refresh-token store. Without it, login still
// works but no refresh tokens are issued (the in-memory test setup).
func SetRedisService(rs *redissvc.RedisService, refreshTTL time.Duration) {
	refreshStore = auth.NewRefreshStore(rs, refreshTTL)
}
