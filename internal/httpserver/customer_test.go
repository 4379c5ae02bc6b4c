package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"storecrm/internal/domain"
)

func TestCreateCustomerEndpoint(t *testing.T) {
	svc := &stubCustomerSvc{customer: &domain.Customer{ID: "c1", Name: "Ana", Email: "ana@example.com"}}
	router := newTestRouter(t, Deps{CustomerSvc: svc})

	rec := doRequest(router, http.MethodPost, "/api/customers", "user-token", map[string]string{
		"name":  "Ana",
		"email": "ana@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != "c1" {
		t.Fatalf("expected created customer in body, got %+v", got)
	}

	rec = doRequest(router, http.MethodPost, "/api/customers", "user-token", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %d", rec.Code)
	}
}

func TestListCustomersEndpoint_EmptyIsArray(t *testing.T) {
	router := newTestRouter(t, Deps{CustomerSvc: &stubCustomerSvc{}})

	rec := doRequest(router, http.MethodGet, "/api/customers", "user-token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Fatalf("expected empty JSON array, got %s", rec.Body.String())
	}
}

func TestCustomerSearchEndpoints_RequireQuery(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doRequest(router, http.MethodGet, "/api/customers/search", "user-token", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("search without name: expected 400, got %d", rec.Code)
	}
	rec = doRequest(router, http.MethodGet, "/api/customers/phone", "user-token", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("phone search without phone: expected 400, got %d", rec.Code)
	}
	rec = doRequest(router, http.MethodGet, "/api/customers/search?name=ana", "user-token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search with name: expected 200, got %d", rec.Code)
	}
}

func TestCustomersByPeriodEndpoint_ParsesRFC3339(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doRequest(router, http.MethodGet, "/api/customers/period?start=yesterday&end=2026-02-01T00:00:00Z", "admin-token", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad start: expected 400, got %d", rec.Code)
	}
	rec = doRequest(router, http.MethodGet, "/api/customers/period?start=2026-01-01T00:00:00Z&end=2026-02-01T00:00:00Z", "admin-token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid period: expected 200, got %d", rec.Code)
	}
}

func TestCountRegisteredTodayEndpoint(t *testing.T) {
	router := newTestRouter(t, Deps{CustomerSvc: &stubCustomerSvc{count: 4}})

	rec := doRequest(router, http.MethodGet, "/api/customers/stats/registered-today", "admin-token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["count"] != 4 {
		t.Fatalf("expected count 4, got %v", body)
	}
}

func TestDeleteCustomerEndpoint(t *testing.T) {
	router := newTestRouter(t, Deps{CustomerSvc: &stubCustomerSvc{}})
	rec := doRequest(router, http.MethodDelete, "/api/customers/c1", "admin-token", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	router = newTestRouter(t, Deps{CustomerSvc: &stubCustomerSvc{err: domain.ErrNotFound}})
	rec = doRequest(router, http.MethodDelete, "/api/customers/missing", "admin-token", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
