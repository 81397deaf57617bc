package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	api "github.com/Gangesh855/factory-ops/internal/http"
	handler "github.com/Gangesh855/factory-ops/internal/http/handlers"
	rl "github.com/Gangesh855/factory-ops/internal/http/rate_limiter"
	"github.com/Gangesh855/factory-ops/internal/ledger"
	"github.com/Gangesh855/factory-ops/internal/models"
	"github.com/Gangesh855/factory-ops/internal/repo"
)

var (
	token      string
	storeRepo  *repo.InMemoryStoreRepository
	itemRepo   *repo.InMemoryItemRepository
	ledgerRepo *repo.InMemoryLedgerRepository
	poRepo     *repo.InMemoryPurchaseOrderRepository
	auditRepo  *repo.InMemoryAuditRepository
	userRepo   *repo.InMemoryUserRepository
)

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	storeRepo = repo.NewInMemoryStoreRepository()
	handler.SetStoreRepo(storeRepo)

	itemRepo = repo.NewInMemoryItemRepository()
	handler.SetItemRepo(itemRepo)

	ledgerRepo = repo.NewInMemoryLedgerRepository(itemRepo)
	handler.SetLedgerRepo(ledgerRepo)

	poRepo = repo.NewInMemoryPurchaseOrderRepository()
	handler.SetPurchaseOrderRepo(poRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})
	userRepo.CreateUser(models.User{
		Username:     "viewer",
		PasswordHash: string(hash),
		Role:         "viewer",
	})

	metricsRepo := repo.NewInMemoryMetricsRepository()
	handler.SetMetricsRepo(metricsRepo)
	metricsRepo.SetRepositories(itemRepo, ledgerRepo)

	auditRepo = repo.NewInMemoryAuditRepository()
	handler.SetLedgerService(ledger.NewService(itemRepo, ledgerRepo, auditRepo))
}

func clearAll() {
	storeRepo.Clear()
	itemRepo.Clear()
	ledgerRepo.Clear()
	poRepo.Clear()
	auditRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	// All httptest requests share one client address; reset the limiter so
	// repeated logins across the suite never hit 429.
	rl.CleanupAllVisitors()

	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doRequest(r http.Handler, method, path string, payload any, bearer string) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createStore(r http.Handler, s handler.StoreRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/stores", s, token)
}

func createItem(r http.Handler, storeID int, item handler.ItemRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, fmt.Sprintf("/stores/%d/inventory", storeID), item, token)
}

func applyTransaction(r http.Handler, itemID int, tx handler.TransactionRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, fmt.Sprintf("/items/%d/transactions", itemID), tx, token)
}

// mustCreateItem sets up a store with one item and fails the test on any
// unexpected status.
func mustCreateItem(t *testing.T, r http.Handler, item handler.ItemRequest) handler.ItemResponse {
	t.Helper()

	ws := createStore(r, handler.StoreRequest{Name: "Main Warehouse"})
	if ws.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for store creation, got %d", ws.Code)
	}
	var store models.Store
	if err := json.NewDecoder(ws.Body).Decode(&store); err != nil {
		t.Fatalf("error decoding store response: %v", err)
	}

	wi := createItem(r, store.ID, item)
	if wi.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for item creation, got %d: %s", wi.Code, wi.Body.String())
	}
	var resp handler.ItemResponse
	if err := json.NewDecoder(wi.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding item response: %v", err)
	}
	return resp
}

func getTransactions(t *testing.T, r http.Handler, itemID int, query string) handler.TransactionsSearchResult {
	t.Helper()

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/items/%d/transactions%s", itemID, query), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK fetching transactions, got %d", w.Code)
	}
	var result handler.TransactionsSearchResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding transactions response: %v", err)
	}
	return result
}
