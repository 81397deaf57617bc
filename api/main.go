package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/Gangesh855/factory-ops/docs"
	"github.com/Gangesh855/factory-ops/internal/alerts"
	"github.com/Gangesh855/factory-ops/internal/auth"
	"github.com/Gangesh855/factory-ops/internal/config"
	"github.com/Gangesh855/factory-ops/internal/db"
	router "github.com/Gangesh855/factory-ops/internal/http"
	"github.com/Gangesh855/factory-ops/internal/http/handlers"
	rl "github.com/Gangesh855/factory-ops/internal/http/rate_limiter"
	"github.com/Gangesh855/factory-ops/internal/ledger"
	"github.com/Gangesh855/factory-ops/internal/redissvc"
	"github.com/Gangesh855/factory-ops/internal/repo"
)

var ctx = context.Background()

// @title Factory Ops Inventory API
// @version 1.0
// @description REST API for store inventory, the stock transaction ledger, and purchase-order receiving.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	handlers.SetRedisService(redisService, cfg.RefreshTokenTTL)
	alerts.SetRedisService(redisService)

	go alerts.StartDailyLowStockSummary(24 * time.Hour)
	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	itemRepo := repo.NewPostgresItemRepository(database)
	ledgerRepo := repo.NewPostgresLedgerRepository(database)
	auditRepo := repo.NewPostgresAuditRepository(database)

	handlers.SetStoreRepo(repo.NewPostgresStoreRepository(database))
	handlers.SetItemRepo(itemRepo)
	handlers.SetLedgerRepo(ledgerRepo)
	handlers.SetPurchaseOrderRepo(repo.NewPostgresPurchaseOrderRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetLedgerService(ledger.NewService(itemRepo, ledgerRepo, auditRepo))

	r := router.NewRouter()
	log.Println("✅ Server running on", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
