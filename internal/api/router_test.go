package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mistgo/inventory-api/internal/core/domain"
	"github.com/mistgo/inventory-api/internal/core/token"
)

// In-memory repositories backing the full middleware/handler chain.

type memUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	created := *user
	created.ID = r.nextID
	r.nextID++
	stored := created
	r.users[created.Username] = &stored
	return &created, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type memItemRepo struct {
	mu     sync.Mutex
	items  map[int64]*domain.Item
	nextID int64
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[int64]*domain.Item), nextID: 1}
}

func (r *memItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *item
	created.ID = r.nextID
	r.nextID++
	stored := created
	r.items[created.ID] = &stored
	return &created, nil
}

func (r *memItemRepo) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Item
	for _, i := range r.items {
		if i.OwnerID == ownerID {
			clone := *i
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memItemRepo) FindByID(_ context.Context, id, ownerID int64) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.items[id]
	if !ok || i.OwnerID != ownerID {
		return nil, domain.ErrItemNotFound
	}
	clone := *i
	return &clone, nil
}

func (r *memItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if !ok || stored.OwnerID != item.OwnerID {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	r.items[item.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memItemRepo) Delete(_ context.Context, id, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.items[id]
	if !ok || i.OwnerID != ownerID {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func newTestServer() http.Handler {
	tokens := token.NewService("secret", "inventory-api", "inventory-app", time.Hour)
	return newRouter(newMemUserRepo(), newMemItemRepo(), tokens, zerolog.Nop())
}

func doJSON(h http.Handler, method, target, tok, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	rec := doJSON(h, http.MethodPost, "/api/auth/register",
		"", fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	if rec.Code != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d: %s", username, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("register %s: invalid json: %v", username, err)
	}
	if resp.Token == "" {
		t.Fatalf("register %s: no token in response", username)
	}
	return resp.Token
}

func TestEndToEnd_RegisterCreateCrossTenantFetch(t *testing.T) {
	h := newTestServer()

	aliceToken := registerUser(t, h, "alice", "pw123456")

	rec := doJSON(h, http.MethodPost, "/api/items", aliceToken,
		`{"name":"Widget","price":9.99,"quantity":3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID       int64 `json:"id"`
		Quantity int   `json:"quantity"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("create item: invalid json: %v", err)
	}
	if created.ID == 0 || created.Quantity != 3 {
		t.Fatalf("create item: unexpected payload: %+v", created)
	}

	itemPath := fmt.Sprintf("/api/items/%d", created.ID)

	// Alice can fetch her own item.
	if rec := doJSON(h, http.MethodGet, itemPath, aliceToken, ""); rec.Code != http.StatusOK {
		t.Fatalf("owner fetch: expected 200, got %d", rec.Code)
	}

	// A freshly registered user sees 404 on every path, never 401/403.
	bobToken := registerUser(t, h, "bob", "pw123456")
	for _, tc := range []struct {
		method, body string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"name":"Hijack","price":1,"quantity":1}`},
		{http.MethodDelete, ""},
	} {
		rec := doJSON(h, tc.method, itemPath, bobToken, tc.body)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s by bob: expected 404, got %d", tc.method, rec.Code)
		}
	}

	// The item is untouched by bob's attempts.
	rec = doJSON(h, http.MethodGet, itemPath, aliceToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("owner re-fetch: expected 200, got %d", rec.Code)
	}
	var after struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &after); err != nil {
		t.Fatalf("owner re-fetch: invalid json: %v", err)
	}
	if after.Name != "Widget" {
		t.Fatalf("item was altered by a foreign caller: %+v", after)
	}
}

func TestEndToEnd_DuplicateRegistration(t *testing.T) {
	h := newTestServer()

	registerUser(t, h, "alice", "pw123456")
	rec := doJSON(h, http.MethodPost, "/api/auth/register",
		"", `{"username":"alice","password":"other-pw"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", rec.Code)
	}
}

func TestEndToEnd_LoginFailuresLookIdentical(t *testing.T) {
	h := newTestServer()
	registerUser(t, h, "alice", "pw123456")

	wrongPw := doJSON(h, http.MethodPost, "/api/auth/login",
		"", `{"username":"alice","password":"wrong"}`)
	noUser := doJSON(h, http.MethodPost, "/api/auth/login",
		"", `{"username":"nobody","password":"wrong"}`)

	if wrongPw.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPw.Code, noUser.Code)
	}
	if wrongPw.Body.String() != noUser.Body.String() {
		t.Fatalf("failure bodies differ: %q vs %q", wrongPw.Body.String(), noUser.Body.String())
	}
}

func TestEndToEnd_ProtectedRoutesRequireToken(t *testing.T) {
	h := newTestServer()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/items"},
		{http.MethodPost, "/api/items"},
		{http.MethodGet, "/api/items/1"},
		{http.MethodPut, "/api/items/1"},
		{http.MethodDelete, "/api/items/1"},
	} {
		rec := doJSON(h, tc.method, tc.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestEndToEnd_HealthIsPublic(t *testing.T) {
	h := newTestServer()
	rec := doJSON(h, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Healthy" {
		t.Fatalf("expected body \"Healthy\", got %q", rec.Body.String())
	}
}

func TestEndToEnd_ListScopedToCaller(t *testing.T) {
	h := newTestServer()

	aliceToken := registerUser(t, h, "alice", "pw123456")
	bobToken := registerUser(t, h, "bob", "pw123456")

	if rec := doJSON(h, http.MethodPost, "/api/items", aliceToken, `{"name":"A","price":1,"quantity":1}`); rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rec.Code)
	}

	rec := doJSON(h, http.MethodGet, "/api/items", bobToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected bob's list to be empty, got %q", body)
	}
}
