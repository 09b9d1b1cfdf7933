// Package main is the entry point for the PDV API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdv/internal/app"
	"pdv/internal/config"
	"pdv/internal/domain/catalog"
	"pdv/internal/domain/customer"
	"pdv/internal/domain/fiscal"
	"pdv/internal/domain/ledger"
	"pdv/internal/domain/sale"
	"pdv/internal/domain/stock"
	v1 "pdv/internal/infrastructure/http/v1"
	"pdv/internal/infrastructure/memory"
	"pdv/pkg/auth"
	"pdv/pkg/logger"
	"pdv/pkg/numerator"
)

const version = "0.1.0"

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Infow("starting pdv server", "config", cfg.String())

	// --- Storage ---
	productStore := memory.NewProductStore()
	customerStore := memory.NewCustomerStore()
	saleStore := memory.NewSaleStore()
	movementStore := memory.NewMovementStore()
	transactionStore := memory.NewTransactionStore()
	cupomStore := memory.NewCupomStore()
	sequenceStore := memory.NewSequenceStore()

	// --- Services ---
	numeratorService := numerator.New(sequenceStore)
	catalogService := catalog.NewService(productStore, numeratorService)
	customerService := customer.NewService(customerStore, numeratorService)
	ledgerService := ledger.NewService(transactionStore)
	stockService := stock.NewService(movementStore, catalogService)
	saleService := sale.NewService(saleStore, catalogService, customerService, numeratorService)
	fiscalService := fiscal.NewService(cupomStore, customerService, numeratorService)

	saleFlow := app.NewSaleFlow(saleService, stockService, ledgerService, fiscalService, app.Config{
		RestockOnCancel:       cfg.RestockOnCancel,
		ReverseLedgerOnCancel: cfg.ReverseLedgerOnCancel,
	})

	// --- Auth ---
	var authService *auth.Service
	if cfg.AuthEnabled() {
		userStore := memory.NewUserStore()
		authService = auth.NewService(userStore, cfg.JWTSecret, cfg.JWTTTL)

		if cfg.AdminPassword != "" {
			admin, err := auth.NewUser(cfg.AdminUser, cfg.AdminPassword, "Administrador", "admin")
			if err != nil {
				log.Fatalw("failed to create admin user", "error", err)
			}
			if err := userStore.Create(ctx, admin); err != nil {
				log.Fatalw("failed to seed admin user", "error", err)
			}
			log.Infow("admin user seeded", "username", cfg.AdminUser)
		}
	} else {
		log.Warn("JWT_SECRET not set; API runs without authentication")
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		AppName:        cfg.AppName,
		Version:        version,
		Logger:         log,
		Catalog:        catalogService,
		Customer:       customerService,
		Ledger:         ledgerService,
		Stock:          stockService,
		Sale:           saleService,
		Fiscal:         fiscalService,
		SaleFlow:       saleFlow,
		Auth:           authService,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
