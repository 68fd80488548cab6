package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/uteeni/storefront-api/internal/api/handler"
	"github.com/uteeni/storefront-api/internal/api/middleware"
	"github.com/uteeni/storefront-api/internal/core/ports"
	"github.com/uteeni/storefront-api/internal/core/pricing"
	"github.com/uteeni/storefront-api/internal/core/service"
)

// Deps carries everything the router needs. The repositories are backed by
// either the in-memory store or MongoDB; Mongo and Redis handles are nil in
// memory mode and only consulted by the readiness probe.
type Deps struct {
	Identities  ports.IdentityRepository
	Catalog     ports.CatalogRepository
	Orders      ports.OrderRepository
	Idempotency service.IdempotencyStore
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// Per-instance registry so building several routers in one process does
	// not collide; the process-wide business metrics are merged in below.
	promRegistry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "storefront",
		Registerer: promRegistry,
	}))
	// Identity resolution runs on every request, protected or not.
	e.Use(middleware.Identify(deps.Identities))

	// --- Dependencies ---
	catalogService := service.NewCatalogService(deps.Catalog, deps.Log)
	orderService := service.NewOrderService(deps.Orders, pricing.NewAuthority(deps.Catalog), deps.Idempotency, deps.Log)
	directoryService := service.NewDirectoryService(deps.Identities, deps.Log)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(directoryService)

	// --- Catalog (anonymous) ---
	e.GET("/products", catalogHandler.List)
	e.GET("/products/search", catalogHandler.Search)

	// --- Orders (authenticated; ownership enforced per instance) ---
	orders := e.Group("/orders", middleware.RequireAuth())
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)

	// --- Admin ---
	admin := e.Group("/admin", middleware.RequireAuth())
	admin.GET("/users", userHandler.Users)

	e.GET("/whoami", userHandler.WhoAmI, middleware.RequireAuth())

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{promRegistry, prometheus.DefaultGatherer},
	}))

	return e
}
