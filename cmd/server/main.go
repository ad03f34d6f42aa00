package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/config"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/database"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/pricing"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/repository"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Run schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	savedRepo := repository.NewSavedAmountRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	systemService := service.NewSystemService(db)
	settingsService, err := service.NewSettingsService(settingRepo, cfg.Providers.FernetKey)
	if err != nil {
		log.Fatalf("Failed to initialize settings service: %v", err)
	}

	// The stored provider key wins over the environment one
	marketAPIKey, err := settingsService.MarketAPIKey()
	if err != nil {
		log.Fatalf("Failed to read stored market API key: %v", err)
	}
	if marketAPIKey == "" {
		marketAPIKey = cfg.Providers.MarketAPIKey
	}
	if marketAPIKey == "" {
		log.Println("No market data API key configured, serving mock prices")
	}

	// Create pricing gateway
	rateClient := pricing.NewHTTPRateClient(cfg.Providers.ExchangeRateURL)
	marketClient := pricing.NewHTTPMarketClient(cfg.Providers.MarketDataURL, marketAPIKey)
	gateway := pricing.NewGateway(rateClient, marketClient, marketAPIKey != "")

	// Create services
	transactionService := service.NewTransactionService(transactionRepo)
	holdingService := service.NewHoldingService(holdingRepo)
	aggregationService := service.NewAggregationService(transactionRepo, savedRepo)
	breakdownService := service.NewBreakdownService(transactionRepo)
	netWorthService := service.NewNetWorthService(holdingRepo, gateway, cfg.Household.Members)

	// Refresh the cached exchange rate and prices every hour
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		gateway.InvalidateRate()
		gateway.ResetPrices()
		log.Println("Invalidated cached exchange rate and prices")
	}); err != nil {
		log.Fatalf("Failed to schedule rate refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(
		systemService,
		settingsService,
		transactionService,
		holdingService,
		aggregationService,
		breakdownService,
		netWorthService,
		gateway,
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
