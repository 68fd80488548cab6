package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/uteeni/storefront-api/internal/infrastructure/memory"
)

func newTestRouter() *echo.Echo {
	return NewRouter(Deps{
		Identities:  memory.NewIdentityRepository(memory.SeedIdentities(), memory.SeedCredentials()),
		Catalog:     memory.NewCatalogRepository(memory.SeedProducts()),
		Orders:      memory.NewOrderRepository(memory.SeedOrders()),
		Idempotency: memory.NewIdempotencyStore(),
		Log:         zerolog.Nop(),
	})
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_ProductsHideInternalFields(t *testing.T) {
	e := newTestRouter()

	rec := do(e, http.MethodGet, "/products", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, leak := range []string{"supplier", "inventory", "internal_notes", "reorder placed"} {
		if strings.Contains(body, leak) {
			t.Fatalf("catalog response leaked %q: %s", leak, body)
		}
	}

	// Idempotence: an identical request returns identical output.
	again := do(e, http.MethodGet, "/products", "", "")
	if again.Body.String() != body {
		t.Fatalf("repeated catalog listing diverged")
	}
}

func TestRouter_SearchRejectsExpressions(t *testing.T) {
	e := newTestRouter()

	for _, q := range []string{"p.price%3C100", "%28function%28%29%7B%7D%29%28%29", ""} {
		rec := do(e, http.MethodGet, "/products/search?q="+q, "", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestRouter_SearchLiteralTerm(t *testing.T) {
	e := newTestRouter()

	rec := do(e, http.MethodGet, "/products/search?q=SPEAKER", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Query   string           `json:"q"`
		Count   int              `json:"count"`
		Results []map[string]any `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Query != "SPEAKER" || resp.Count != 1 {
		t.Fatalf("unexpected search response: %+v", resp)
	}
	if _, leaked := resp.Results[0]["supplier_cost"]; leaked {
		t.Fatalf("search result leaked internal field")
	}
}

func TestRouter_OrderAccessTiers(t *testing.T) {
	e := newTestRouter()

	// Anonymous.
	if rec := do(e, http.MethodGet, "/orders/2001", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", rec.Code)
	}
	// Owner.
	if rec := do(e, http.MethodGet, "/orders/2001", "token-alice", ""); rec.Code != http.StatusOK {
		t.Fatalf("owner: expected 200, got %d", rec.Code)
	}
	// Different non-admin user.
	if rec := do(e, http.MethodGet, "/orders/2001", "token-bob", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner: expected 403, got %d", rec.Code)
	}
	// Admin.
	if rec := do(e, http.MethodGet, "/orders/2001", "token-admin", ""); rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", rec.Code)
	}
	// Unknown order.
	if rec := do(e, http.MethodGet, "/orders/9999", "token-alice", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("missing order: expected 404, got %d", rec.Code)
	}
}

func TestRouter_CreateOrderIgnoresClientMoneyFields(t *testing.T) {
	e := newTestRouter()

	body := `{
		"items": [{"product_id": 501, "quantity": 1, "unit_price": 0.01}],
		"total": 0.01,
		"discount": 0.01,
		"is_paid": true
	}`
	rec := do(e, http.MethodPost, "/orders", "token-alice", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var order struct {
		ID     int64 `json:"id"`
		UserID int64 `json:"user_id"`
		Items  []struct {
			UnitPrice float64 `json:"unit_price"`
		} `json:"items"`
		Total  float64 `json:"total"`
		IsPaid bool    `json:"is_paid"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if order.ID != 2003 {
		t.Fatalf("expected next id 2003, got %d", order.ID)
	}
	if order.UserID != 1 {
		t.Fatalf("order should belong to alice, got %d", order.UserID)
	}
	if order.Items[0].UnitPrice != 45 {
		t.Fatalf("unit price must be the catalog price, got %v", order.Items[0].UnitPrice)
	}
	if order.Total != 45 {
		t.Fatalf("total must be server-computed, got %v", order.Total)
	}
	if order.IsPaid {
		t.Fatalf("payment status is never client-writable")
	}
}

func TestRouter_CreateOrderValidation(t *testing.T) {
	e := newTestRouter()

	if rec := do(e, http.MethodPost, "/orders", "", `{"items":[{"product_id":501,"quantity":1}]}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create: expected 401, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/orders", "token-alice", `{"items":[]}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("empty items: expected 400, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/orders", "token-alice", `{"items":[{"product_id":999,"quantity":1}]}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown product: expected 400, got %d", rec.Code)
	}
}

func TestRouter_AdminUsersGated(t *testing.T) {
	e := newTestRouter()

	if rec := do(e, http.MethodGet, "/admin/users", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/admin/users", "token-alice", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", rec.Code)
	}

	rec := do(e, http.MethodGet, "/admin/users", "token-admin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, leak := range []string{"hash1", "hash2", "hash3", "Main St", "555-", "password"} {
		if strings.Contains(body, leak) {
			t.Fatalf("user listing leaked %q: %s", leak, body)
		}
	}
}

func TestRouter_WhoAmI(t *testing.T) {
	e := newTestRouter()

	if rec := do(e, http.MethodGet, "/whoami", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", rec.Code)
	}

	rec := do(e, http.MethodGet, "/whoami", "token-bob", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		User struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User.ID != 2 || resp.User.Name != "Bob" || resp.User.Role != "user" {
		t.Fatalf("unexpected whoami payload: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "hash2") {
		t.Fatalf("whoami leaked credential hash")
	}
}

func TestRouter_IdempotencyKeyReplays(t *testing.T) {
	e := newTestRouter()

	body := `{"items":[{"product_id":540,"quantity":1}]}`
	req1 := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req1.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req1.Header.Set("Authorization", "Bearer token-bob")
	req1.Header.Set("Idempotency-Key", "replay-1")
	rec1 := httptest.NewRecorder()
	e.ServeHTTP(rec1, req1)

	req2 := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req2.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req2.Header.Set("Authorization", "Bearer token-bob")
	req2.Header.Set("Idempotency-Key", "replay-1")
	rec2 := httptest.NewRecorder()
	e.ServeHTTP(rec2, req2)

	var first, second struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(rec1.Body.Bytes(), &first); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if err := json.Unmarshal(rec2.Body.Bytes(), &second); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("replayed create must return the original order: %d vs %d", first.ID, second.ID)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	e := newTestRouter()

	if rec := do(e, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("readiness without deps: expected 200, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}
