package web

import (
	"crypto/rand"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencanteen/canteen/internal/db"
	"github.com/opencanteen/canteen/internal/fieldcrypt"
	"github.com/opencanteen/canteen/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "router_test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	key := make([]byte, fieldcrypt.KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		t.Fatalf("random key: %v", err)
	}
	codec, err := fieldcrypt.NewCodec(key)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	return Router(store.New(conn, codec))
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealthz(t *testing.T) {
	r := newTestRouter(t)
	if rec := do(t, r, http.MethodGet, "/healthz", ""); rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterHomeGuide(t *testing.T) {
	r := newTestRouter(t)
	rec := do(t, r, http.MethodGet, "/", "")
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var guide map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &guide); err != nil {
		t.Fatalf("root must serve JSON: %v", err)
	}
	if guide["title"] != "Canteen API" {
		t.Errorf("unexpected guide title: %v", guide["title"])
	}
}

func TestRouterIngredientFlow(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"name":"Oats","energy_kcal":389,"allergen":"GLUTEN","macronutrient":"CARBS","quantity":100,"unit":"g","avg_price":8.5}`
	if rec := do(t, r, http.MethodPost, "/ingredients", payload); rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Duplicate name maps to 409.
	if rec := do(t, r, http.MethodPost, "/ingredients", payload); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", rec.Code)
	}

	// Invalid enum maps to 400.
	bad := strings.Replace(payload, "GLUTEN", "POLLEN", 1)
	bad = strings.Replace(bad, "Oats", "Rice", 1)
	if rec := do(t, r, http.MethodPost, "/ingredients", bad); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad enum: expected 400, got %d", rec.Code)
	}

	rec := do(t, r, http.MethodGet, "/ingredients", "")
	if rec.Code != 200 {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 ingredient, got %d", len(list))
	}
}

func TestRouterStudentBadge(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"name":"Ana","ra":"RA-001","series":"5th","period":"Morning","class_name":"Turma A","hobbies":["","Drawing"]}`
	rec := do(t, r, http.MethodPost, "/students", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var st map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	if st["name"] != "Ana" {
		t.Errorf("response must carry plaintext name, got %v", st["name"])
	}

	rec = do(t, r, http.MethodGet, "/students/1/qr.png", "")
	if rec.Code != 200 {
		t.Fatalf("badge: expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("badge content type: %q", ct)
	}

	if rec := do(t, r, http.MethodGet, "/students/42/qr.png", ""); rec.Code != http.StatusNotFound {
		t.Errorf("missing student badge: expected 404, got %d", rec.Code)
	}
}
