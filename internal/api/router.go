package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/handlers"
	custommiddleware "github.com/nicoegiaian/finanzas-hogar-backend/internal/api/middleware"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/config"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/pricing"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	settingsService *service.SettingsService,
	transactionService *service.TransactionService,
	holdingService *service.HoldingService,
	aggregationService *service.AggregationService,
	breakdownService *service.BreakdownService,
	netWorthService *service.NetWorthService,
	gateway *pricing.Gateway,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService, settingsService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.Put("/market-key", systemHandler.SetMarketKey)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)
			r.Get("/", transactionHandler.Transactions)
			r.Post("/", transactionHandler.CreateTransaction)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
				r.Post("/copy", transactionHandler.CopyTransaction)
			})
		})

		r.Route("/holding", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(holdingService)
			r.Get("/", holdingHandler.Holdings)
			r.Post("/", holdingHandler.CreateHolding)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", holdingHandler.GetHolding)
				r.Put("/", holdingHandler.UpdateHolding)
				r.Delete("/", holdingHandler.DeleteHolding)
			})
		})

		r.Route("/summary", func(r chi.Router) {
			summaryHandler := handlers.NewSummaryHandler(aggregationService, breakdownService, netWorthService, gateway)
			r.Get("/monthly", summaryHandler.Monthly)
			r.Get("/periods", summaryHandler.Periods)
			r.Get("/breakdown", summaryHandler.Breakdown)
			r.Get("/networth", summaryHandler.NetWorth)
			r.Get("/rate", summaryHandler.Rate)
			r.Post("/saved", summaryHandler.RecordSaved)
		})
	})

	return r
}
