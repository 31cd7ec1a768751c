package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	contactservice "github.com/zhouzirui/folio/backend/internal/service/contact"
)

const testAdminToken = "s3cret"

func setupRouter() *chi.Mux {
	svc := contactservice.NewService(contactservice.NewMemoryInbox(), contactservice.Config{}, nil)
	r := chi.NewRouter()
	New(svc, nil, testAdminToken).RegisterRoutes(r)
	return r
}

func listRequest(target, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func post(r http.Handler, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSubmitContactForm(t *testing.T) {
	r := setupRouter()

	resp := post(r, map[string]string{
		"name":    "Grace",
		"email":   "grace@example.com",
		"subject": "Talk",
		"message": "Let's chat about compilers.",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var receipt map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &receipt); err != nil {
		t.Fatalf("decode receipt: %v", err)
	}
	if receipt["notice"] != contactservice.SuccessNotice {
		t.Fatalf("unexpected notice %q", receipt["notice"])
	}

	list := httptest.NewRecorder()
	r.ServeHTTP(list, listRequest("/contact/submissions", testAdminToken))
	if list.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", list.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(list.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 1 || items[0]["id"] != receipt["id"] {
		t.Fatalf("unexpected submissions %v", items)
	}
}

func TestSubmitContactFormInvalid(t *testing.T) {
	r := setupRouter()

	resp := post(r, map[string]string{"name": "Grace", "email": "nope"})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}

	var body struct {
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Details["email"] != "email" || body.Details["message"] != "required" {
		t.Fatalf("unexpected details %v", body.Details)
	}
}

func TestListRejectsBadLimit(t *testing.T) {
	r := setupRouter()
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, listRequest("/contact/submissions?limit=abc", testAdminToken))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestListSubmissionsRequiresAdminToken(t *testing.T) {
	r := setupRouter()

	resp := post(r, map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hi",
		"message": "Keep this between us.",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	for _, token := range []string{"", "wrong"} {
		list := httptest.NewRecorder()
		r.ServeHTTP(list, listRequest("/contact/submissions", token))
		if list.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: expected 401, got %d", token, list.Code)
		}
		if strings.Contains(list.Body.String(), "ada@example.com") {
			t.Fatalf("token %q: submission leaked: %s", token, list.Body.String())
		}
	}
}

func TestListSubmissionsDisabledWithoutConfiguredToken(t *testing.T) {
	svc := contactservice.NewService(contactservice.NewMemoryInbox(), contactservice.Config{}, nil)
	r := chi.NewRouter()
	New(svc, nil, "").RegisterRoutes(r)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, listRequest("/contact/submissions", "anything"))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
