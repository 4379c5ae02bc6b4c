package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"storecrm/internal/domain"
	"github.com/shopspring/decimal"
)

func TestCreateProductEndpoint(t *testing.T) {
	svc := &stubProductSvc{product: &domain.Product{ID: "p1", Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 5}}
	router := newTestRouter(t, Deps{ProductSvc: svc})

	rec := doRequest(router, http.MethodPost, "/api/products", "user-token", map[string]any{
		"name":  "Widget",
		"price": "9.99",
		"stock": 5,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	svc.err = domain.Invalid("price must be greater than zero")
	svc.product = nil
	rec = doRequest(router, http.MethodPost, "/api/products", "user-token", map[string]any{
		"name":  "Widget",
		"price": "0",
		"stock": 5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid price, got %d", rec.Code)
	}

	svc.err = domain.ErrAlreadyExists
	rec = doRequest(router, http.MethodPost, "/api/products", "user-token", map[string]any{
		"name":  "Widget",
		"price": "9.99",
		"stock": 5,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d", rec.Code)
	}
}

func TestSetProductStockEndpoint(t *testing.T) {
	svc := &stubProductSvc{product: &domain.Product{ID: "p1", Stock: 50}}
	router := newTestRouter(t, Deps{ProductSvc: svc})

	rec := doRequest(router, http.MethodPatch, "/api/products/p1/stock?quantity=50", "admin-token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Stock != 50 {
		t.Fatalf("expected stock 50, got %d", got.Stock)
	}

	rec = doRequest(router, http.MethodPatch, "/api/products/p1/stock?quantity=lots", "admin-token", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-integer quantity, got %d", rec.Code)
	}
	rec = doRequest(router, http.MethodPatch, "/api/products/p1/stock", "admin-token", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing quantity, got %d", rec.Code)
	}
}

func TestProductsByPriceRangeEndpoint(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doRequest(router, http.MethodGet, "/api/products/price?min=abc&max=10", "user-token", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad min: expected 400, got %d", rec.Code)
	}
	rec = doRequest(router, http.MethodGet, "/api/products/price?min=5&max=10", "user-token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid range: expected 200, got %d", rec.Code)
	}
}

func TestListProductsEndpoint_EmptyIsArray(t *testing.T) {
	router := newTestRouter(t, Deps{ProductSvc: &stubProductSvc{}})

	for _, path := range []string{"/api/products", "/api/products/low-stock", "/api/products/category/tools"} {
		rec := doRequest(router, http.MethodGet, path, "user-token", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		if rec.Body.String() != "[]" {
			t.Fatalf("%s: expected empty JSON array, got %s", path, rec.Body.String())
		}
	}
}
