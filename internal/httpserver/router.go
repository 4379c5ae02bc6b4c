package httpserver

import (
	"context"
	"log"
	"strings"
	"time"

	"storecrm/internal/auth"
	"storecrm/internal/domain"
	accountsvc "storecrm/internal/service/account"
	customersvc "storecrm/internal/service/customer"
	productsvc "storecrm/internal/service/product"
	"storecrm/internal/service/stats"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CustomerService is the slice of the customer service the handlers need.
type CustomerService interface {
	Create(ctx context.Context, in customersvc.CreateInput) (*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	SearchByName(ctx context.Context, name string) ([]domain.Customer, error)
	SearchByPhone(ctx context.Context, phone string) ([]domain.Customer, error)
	ListRegisteredBetween(ctx context.Context, start, end time.Time) ([]domain.Customer, error)
	CountRegisteredToday(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

// ProductService is the slice of the product service the handlers need.
type ProductService interface {
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	SearchByName(ctx context.Context, name string) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	ListLowStock(ctx context.Context) ([]domain.Product, error)
	ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	SetStock(ctx context.Context, id string, quantity int) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// StatsService produces the aggregate reports.
type StatsService interface {
	Dashboard(ctx context.Context) (*stats.Dashboard, error)
	Summary(ctx context.Context) (*stats.Summary, error)
}

// AccountService authenticates API callers.
type AccountService interface {
	Signup(ctx context.Context, in accountsvc.SignupInput) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (*domain.Account, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.Account, error)
	AccessTTLSeconds() int
}

// Deps bundles the services the router needs.
type Deps struct {
	CustomerSvc CustomerService
	ProductSvc  ProductService
	StatsSvc    StatsService
	AccountSvc  AccountService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestIDMiddleware(), gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/signup", signupHandler(deps.AccountSvc))
	router.POST("/auth/login", loginHandler(deps.AccountSvc))

	h := handlers{deps: deps}

	api := router.Group("/api", authMiddleware(deps.AccountSvc))

	api.GET("/hello", requireOp(auth.OpHello), h.hello)
	api.GET("/admin", requireOp(auth.OpAdminDemo), h.adminDemo)

	customers := api.Group("/customers")
	customers.POST("", requireOp(auth.OpCustomerCreate), h.createCustomer)
	customers.GET("", requireOp(auth.OpCustomerList), h.listCustomers)
	customers.GET("/search", requireOp(auth.OpCustomerSearch), h.searchCustomersByName)
	customers.GET("/phone", requireOp(auth.OpCustomerSearchPhone), h.searchCustomersByPhone)
	customers.GET("/period", requireOp(auth.OpCustomerPeriod), h.customersByPeriod)
	customers.GET("/stats/registered-today", requireOp(auth.OpCustomerRegisteredToday), h.countRegisteredToday)
	customers.GET("/email/:email", requireOp(auth.OpCustomerGetByEmail), h.getCustomerByEmail)
	customers.GET("/cpf/:cpf", requireOp(auth.OpCustomerGetByCPF), h.getCustomerByCPF)
	customers.GET("/:id", requireOp(auth.OpCustomerGet), h.getCustomer)
	customers.PUT("/:id", requireOp(auth.OpCustomerUpdate), h.updateCustomer)
	customers.DELETE("/:id", requireOp(auth.OpCustomerDelete), h.deleteCustomer)

	products := api.Group("/products")
	products.POST("", requireOp(auth.OpProductCreate), h.createProduct)
	products.GET("", requireOp(auth.OpProductList), h.listProducts)
	products.GET("/search", requireOp(auth.OpProductSearch), h.searchProductsByName)
	products.GET("/low-stock", requireOp(auth.OpProductLowStock), h.listLowStockProducts)
	products.GET("/price", requireOp(auth.OpProductPriceRange), h.productsByPriceRange)
	products.GET("/category/:category", requireOp(auth.OpProductByCategory), h.productsByCategory)
	products.GET("/:id", requireOp(auth.OpProductGet), h.getProduct)
	products.PUT("/:id", requireOp(auth.OpProductUpdate), h.updateProduct)
	products.PATCH("/:id/stock", requireOp(auth.OpProductSetStock), h.setProductStock)
	products.DELETE("/:id", requireOp(auth.OpProductDelete), h.deleteProduct)

	st := api.Group("/stats")
	st.GET("/dashboard", requireOp(auth.OpStatsDashboard), h.statsDashboard)
	st.GET("/summary", requireOp(auth.OpStatsSummary), h.statsSummary)

	return router, nil
}

func corsConfig(allowedOrigins string) cors.Config {
	cfg := cors.DefaultConfig()
	if allowedOrigins == "" || allowedOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = splitOrigins(allowedOrigins)
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	return cfg
}

func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type handlers struct {
	deps Deps
}
