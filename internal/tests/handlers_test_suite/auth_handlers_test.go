package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/Gangesh855/factory-ops/internal/http"
	handler "github.com/Gangesh855/factory-ops/internal/http/handlers"
	rl "github.com/Gangesh855/factory-ops/internal/http/rate_limiter"
	"github.com/Gangesh855/factory-ops/internal/models"
)

func TestRegisterHandler_Valid(t *testing.T) {
	t.Cleanup(rl.CleanupAllVisitors)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "newuser", Password: "longenough"}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the register response")
	}

	// Registered users start in the restricted "user" role: reads work,
	// writes do not.
	wGet := doRequest(r, http.MethodGet, "/stores", nil, resp.Token)
	if wGet.Code != http.StatusOK {
		t.Errorf("expected 200 OK listing stores with new token, got %d", wGet.Code)
	}
	wPost := doRequest(r, http.MethodPost, "/stores", handler.StoreRequest{Name: "North Plant"}, resp.Token)
	if wPost.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden creating store as plain user, got %d", wPost.Code)
	}
}

func TestRegisterHandler_Invalid(t *testing.T) {
	t.Cleanup(rl.CleanupAllVisitors)
	r := api.NewRouter()

	tests := []struct {
		name    string
		payload handler.CredentialsRequest
	}{
		{"Missing credentials", handler.CredentialsRequest{}},
		{"Short username", handler.CredentialsRequest{Username: "ab", Password: "longenough"}},
		{"Short password", handler.CredentialsRequest{Username: "someone", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/register", tt.payload, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	t.Cleanup(rl.CleanupAllVisitors)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "duplicated", Password: "longenough"}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "duplicated", Password: "longenough"}, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	t.Cleanup(rl.CleanupAllVisitors)
	r := api.NewRouter()

	payload := handler.UserLogin{Username: "admin", Password: "wrong"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestProtectedRoute_MissingToken(t *testing.T) {
	r := api.NewRouter()

	w := doRequest(r, http.MethodGet, "/stores", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestProtectedRoute_GarbageToken(t *testing.T) {
	r := api.NewRouter()

	w := doRequest(r, http.MethodGet, "/stores", nil, "not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestViewerRole_CannotWrite(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	viewerToken, err := generateToken(r, "viewer", "secret")
	if err != nil {
		t.Fatalf("error generating viewer token: %v", err)
	}

	item := mustCreateItem(t, r, handler.ItemRequest{SKU: "WID-1", Name: "Widget", Quantity: 10})

	// Reads are allowed.
	w := doRequest(r, http.MethodGet, "/stores", nil, viewerToken)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 OK listing stores as viewer, got %d", w.Code)
	}

	// Writes are not.
	body, _ := json.Marshal(handler.TransactionRequest{TransactionType: models.TransactionOut, Quantity: 1})
	req := httptest.NewRequest(http.MethodPost, "/items/1/transactions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden recording transaction as viewer, got %d", rec.Code)
	}

	wItem := doRequest(r, http.MethodGet, "/items/1", nil, viewerToken)
	var after handler.ItemResponse
	if err := json.NewDecoder(wItem.Body).Decode(&after); err != nil {
		t.Fatalf("error decoding item response: %v", err)
	}
	if after.Quantity != item.Quantity {
		t.Errorf("quantity changed by a forbidden request: got %d, want %d", after.Quantity, item.Quantity)
	}
}
