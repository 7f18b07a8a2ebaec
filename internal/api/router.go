package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/mistgo/inventory-api/internal/api/handler"
	"github.com/mistgo/inventory-api/internal/api/middleware"
	"github.com/mistgo/inventory-api/internal/core/ports"
	"github.com/mistgo/inventory-api/internal/core/service"
	"github.com/mistgo/inventory-api/internal/core/token"
	"github.com/mistgo/inventory-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, tokens *token.Service, log zerolog.Logger) *echo.Echo {
	e := newRouter(postgres.NewUserRepository(db), postgres.NewItemRepository(db), tokens, log)

	// --- Health probes and metrics (no auth required) ---
	readinessHandler := handler.NewReadinessHandler(db)
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?
	e.Use(echoprometheus.NewMiddleware("inventory"))
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// newRouter wires the transport layer over the given repositories. Split out
// so route-level tests can run the real middleware chain against in-memory
// stores.
func newRouter(userRepo ports.UserRepository, itemRepo ports.ItemRepository, tokens *token.Service, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// --- Dependencies ---
	authService := service.NewAuthService(userRepo, tokens, log)
	itemService := service.NewItemService(itemRepo, log)
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Item routes (all behind the identity middleware) ---
	items := e.Group("/api/items", authMiddleware)
	items.GET("", itemHandler.List)
	items.POST("", itemHandler.Create)
	items.GET("/:id", itemHandler.Get)
	items.PUT("/:id", itemHandler.Update)
	items.DELETE("/:id", itemHandler.Delete)

	// --- Liveness probe (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?

	return e
}
