package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storecrm/internal/domain"
	accountsvc "storecrm/internal/service/account"
	customersvc "storecrm/internal/service/customer"
	productsvc "storecrm/internal/service/product"
	"storecrm/internal/service/stats"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// stubCustomerSvc returns canned values so handler behavior can be tested
// without a database.
type stubCustomerSvc struct {
	customer *domain.Customer
	list     []domain.Customer
	count    int64
	err      error
}

func (s *stubCustomerSvc) Create(context.Context, customersvc.CreateInput) (*domain.Customer, error) {
	return s.customer, s.err
}
func (s *stubCustomerSvc) Get(context.Context, string) (*domain.Customer, error) {
	return s.customer, s.err
}
func (s *stubCustomerSvc) GetByEmail(context.Context, string) (*domain.Customer, error) {
	return s.customer, s.err
}
func (s *stubCustomerSvc) GetByCPF(context.Context, string) (*domain.Customer, error) {
	return s.customer, s.err
}
func (s *stubCustomerSvc) List(context.Context) ([]domain.Customer, error) {
	return s.list, s.err
}
func (s *stubCustomerSvc) SearchByName(context.Context, string) ([]domain.Customer, error) {
	return s.list, s.err
}
func (s *stubCustomerSvc) SearchByPhone(context.Context, string) ([]domain.Customer, error) {
	return s.list, s.err
}
func (s *stubCustomerSvc) ListRegisteredBetween(context.Context, time.Time, time.Time) ([]domain.Customer, error) {
	return s.list, s.err
}
func (s *stubCustomerSvc) CountRegisteredToday(context.Context) (int64, error) {
	return s.count, s.err
}
func (s *stubCustomerSvc) Update(context.Context, string, domain.CustomerPatch) (*domain.Customer, error) {
	return s.customer, s.err
}
func (s *stubCustomerSvc) Delete(context.Context, string) error {
	return s.err
}

type stubProductSvc struct {
	product *domain.Product
	list    []domain.Product
	err     error
}

func (s *stubProductSvc) Create(context.Context, productsvc.CreateInput) (*domain.Product, error) {
	return s.product, s.err
}
func (s *stubProductSvc) Get(context.Context, string) (*domain.Product, error) {
	return s.product, s.err
}
func (s *stubProductSvc) List(context.Context) ([]domain.Product, error) {
	return s.list, s.err
}
func (s *stubProductSvc) SearchByName(context.Context, string) ([]domain.Product, error) {
	return s.list, s.err
}
func (s *stubProductSvc) ListByCategory(context.Context, string) ([]domain.Product, error) {
	return s.list, s.err
}
func (s *stubProductSvc) ListLowStock(context.Context) ([]domain.Product, error) {
	return s.list, s.err
}
func (s *stubProductSvc) ListByPriceRange(context.Context, decimal.Decimal, decimal.Decimal) ([]domain.Product, error) {
	return s.list, s.err
}
func (s *stubProductSvc) Update(context.Context, string, domain.ProductPatch) (*domain.Product, error) {
	return s.product, s.err
}
func (s *stubProductSvc) SetStock(context.Context, string, int) (*domain.Product, error) {
	return s.product, s.err
}
func (s *stubProductSvc) Delete(context.Context, string) error {
	return s.err
}

type stubStatsSvc struct {
	dashboard *stats.Dashboard
	summary   *stats.Summary
	err       error
}

func (s *stubStatsSvc) Dashboard(context.Context) (*stats.Dashboard, error) {
	return s.dashboard, s.err
}
func (s *stubStatsSvc) Summary(context.Context) (*stats.Summary, error) {
	return s.summary, s.err
}

// stubAccountSvc maps fixed bearer tokens to accounts.
type stubAccountSvc struct {
	byToken    map[string]*domain.Account
	signupAcct *domain.Account
	signupErr  error
	loginErr   error
}

func (s *stubAccountSvc) Signup(context.Context, accountsvc.SignupInput) (*domain.Account, error) {
	return s.signupAcct, s.signupErr
}

func (s *stubAccountSvc) Login(context.Context, string, string) (*domain.Account, string, string, error) {
	if s.loginErr != nil {
		return nil, "", "", s.loginErr
	}
	acct := s.byToken["user-token"]
	return acct, "user-token", "refresh-token", nil
}

func (s *stubAccountSvc) LookupByToken(_ context.Context, token string) (*domain.Account, error) {
	acct, ok := s.byToken[token]
	if !ok {
		return nil, accountsvc.ErrInvalidToken
	}
	return acct, nil
}

func (s *stubAccountSvc) AccessTTLSeconds() int { return 3600 }

func defaultAccounts() *stubAccountSvc {
	return &stubAccountSvc{byToken: map[string]*domain.Account{
		"user-token":  {ID: "a1", Username: "user", Role: domain.RoleUser},
		"admin-token": {ID: "a2", Username: "admin", Role: domain.RoleAdmin},
	}}
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.AccountSvc == nil {
		deps.AccountSvc = defaultAccounts()
	}
	if deps.CustomerSvc == nil {
		deps.CustomerSvc = &stubCustomerSvc{}
	}
	if deps.ProductSvc == nil {
		deps.ProductSvc = &stubProductSvc{}
	}
	if deps.StatsSvc == nil {
		deps.StatsSvc = &stubStatsSvc{}
	}
	router, err := buildRouter(log.New(io.Discard, "", 0), nil, deps, "*")
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, Deps{})
	rec := doRequest(router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz_NoDatabase(t *testing.T) {
	router := newTestRouter(t, Deps{})
	rec := doRequest(router, http.MethodGet, "/readyz", "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without db, got %d", rec.Code)
	}
}

func TestAPI_RequiresToken(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doRequest(router, http.MethodGet, "/api/customers", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	rec = doRequest(router, http.MethodGet, "/api/customers", "bogus", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unknown token, got %d", rec.Code)
	}
}

func TestAPI_RoleEnforcement(t *testing.T) {
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/customers/c1"},
		{http.MethodGet, "/api/customers/period?start=2026-01-01T00:00:00Z&end=2026-02-01T00:00:00Z"},
		{http.MethodGet, "/api/customers/stats/registered-today"},
		{http.MethodDelete, "/api/products/p1"},
		{http.MethodPatch, "/api/products/p1/stock?quantity=5"},
		{http.MethodGet, "/api/stats/dashboard"},
		{http.MethodGet, "/api/stats/summary"},
		{http.MethodGet, "/api/admin"},
	}
	router := newTestRouter(t, Deps{
		CustomerSvc: &stubCustomerSvc{customer: &domain.Customer{ID: "c1"}},
		ProductSvc:  &stubProductSvc{product: &domain.Product{ID: "p1"}},
		StatsSvc:    &stubStatsSvc{dashboard: &stats.Dashboard{}, summary: &stats.Summary{}},
	})
	for _, tc := range cases {
		rec := doRequest(router, tc.method, tc.path, "user-token", nil)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403 for USER, got %d", tc.method, tc.path, rec.Code)
		}
		rec = doRequest(router, tc.method, tc.path, "admin-token", nil)
		if rec.Code == http.StatusForbidden || rec.Code == http.StatusUnauthorized {
			t.Fatalf("%s %s: ADMIN rejected with %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestHelloAndAdminDemo(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doRequest(router, http.MethodGet, "/api/hello", "user-token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("hello as USER: expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode hello body: %v", err)
	}
	if body["message"] == "" {
		t.Fatalf("expected greeting message, got %v", body)
	}

	rec = doRequest(router, http.MethodGet, "/api/admin", "admin-token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin demo as ADMIN: expected 200, got %d", rec.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.Invalid("name is required"), http.StatusBadRequest},
		{"conflict", domain.ErrAlreadyExists, http.StatusConflict},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		router := newTestRouter(t, Deps{CustomerSvc: &stubCustomerSvc{err: tc.err}})
		rec := doRequest(router, http.MethodGet, "/api/customers/c1", "user-token", nil)
		if rec.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, rec.Code)
		}
	}
}
