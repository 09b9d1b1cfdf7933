// Package v1 provides HTTP API version 1.
package v1

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pdv/internal/app"
	"pdv/internal/domain/catalog"
	"pdv/internal/domain/customer"
	"pdv/internal/domain/fiscal"
	"pdv/internal/domain/ledger"
	"pdv/internal/domain/sale"
	"pdv/internal/domain/stock"
	"pdv/internal/infrastructure/http/v1/handlers"
	"pdv/internal/infrastructure/http/v1/middleware"
	"pdv/pkg/auth"
	"pdv/pkg/logger"
)

// RouterConfig holds the services the router exposes.
type RouterConfig struct {
	AppName string
	Version string

	Logger *logger.Logger

	Catalog  *catalog.Service
	Customer *customer.Service
	Ledger   *ledger.Service
	Stock    *stock.Service
	Sale     *sale.Service
	Fiscal   *fiscal.Service
	SaleFlow *app.SaleFlow

	// Auth is optional; when nil, all endpoints are open.
	Auth *auth.Service

	AllowedOrigins []string
}

// NewRouter creates and configures the gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	// Health and metrics, no auth
	healthHandler := handlers.NewHealthHandler(cfg.AppName, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("", healthHandler.Live)
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	baseHandler := handlers.NewBaseHandler()

	api := router.Group("/api")

	if cfg.Auth != nil {
		authHandler := handlers.NewAuthHandler(baseHandler, cfg.Auth)
		api.POST("/auth/login", authHandler.Login)
	}

	protected := api.Group("")
	if cfg.Auth != nil {
		protected.Use(middleware.Auth(cfg.Auth))
	}

	handlers.NewProductHandler(baseHandler, cfg.Catalog).
		RegisterRoutes(protected.Group("/produtos"))
	handlers.NewCustomerHandler(baseHandler, cfg.Customer).
		RegisterRoutes(protected.Group("/clientes"))
	handlers.NewSaleHandler(baseHandler, cfg.Sale, cfg.SaleFlow).
		RegisterRoutes(protected.Group("/vendas"))
	handlers.NewMovementHandler(baseHandler, cfg.Stock).
		RegisterRoutes(protected.Group("/estoque"))
	handlers.NewTransactionHandler(baseHandler, cfg.Ledger).
		RegisterRoutes(protected.Group("/financeiro"))
	handlers.NewCupomHandler(baseHandler, cfg.Fiscal).
		RegisterRoutes(protected.Group("/cupons"))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-ID")
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
