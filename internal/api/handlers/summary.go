package handlers

import (
	"net/http"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/response"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/finance"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/pricing"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/service"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/validation"
)

// SummaryHandler handles HTTP requests for the aggregate views: monthly
// totals, the period selector feed, expense breakdowns, and net worth.
type SummaryHandler struct {
	aggregationService *service.AggregationService
	breakdownService   *service.BreakdownService
	netWorthService    *service.NetWorthService
	gateway            *pricing.Gateway
}

// NewSummaryHandler creates a new SummaryHandler with the provided service dependencies.
func NewSummaryHandler(
	aggregationService *service.AggregationService,
	breakdownService *service.BreakdownService,
	netWorthService *service.NetWorthService,
	gateway *pricing.Gateway,
) *SummaryHandler {
	return &SummaryHandler{
		aggregationService: aggregationService,
		breakdownService:   breakdownService,
		netWorthService:    netWorthService,
		gateway:            gateway,
	}
}

// MonthlySummaryResponse represents the aggregate figures for one period.
type MonthlySummaryResponse struct {
	service.MonthlyTotals
	Label       string  `json:"label"`
	SavedBefore float64 `json:"savedBefore"`
}

// Monthly handles GET requests for the per-period income/expense totals.
// Defaults to the current period when no period parameter is given.
//
// Endpoint: GET /api/summary/monthly?period=YYYY-MM
// Response: 200 OK with MonthlySummaryResponse
// Error: 400 Bad Request if the period parameter is not a recognizable period
// Error: 500 Internal Server Error if aggregation fails
func (h *SummaryHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = finance.CurrentPeriod()
	}
	if finance.NormalizePeriod(period) == "" {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidPeriod.Error(), period)
		return
	}

	totals, savedBefore, err := h.aggregationService.GetMonthlySummary(period)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, MonthlySummaryResponse{
		MonthlyTotals: totals,
		Label:         finance.FormatPeriodLabel(totals.Period),
		SavedBefore:   savedBefore,
	})
}

// Periods handles GET requests for the period selector feed: every period in
// use plus the current one, newest first.
//
// Endpoint: GET /api/summary/periods
// Response: 200 OK with array of period strings
// Error: 500 Internal Server Error if retrieval fails
func (h *SummaryHandler) Periods(w http.ResponseWriter, _ *http.Request) {
	periods, err := h.aggregationService.GetPeriods()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, periods)
}

// Breakdown handles GET requests for the per-period expense breakdown by
// owner and by movement type, oldest period first.
//
// Endpoint: GET /api/summary/breakdown
// Response: 200 OK with array of MonthlyBreakdown
// Error: 500 Internal Server Error if retrieval fails
func (h *SummaryHandler) Breakdown(w http.ResponseWriter, _ *http.Request) {
	breakdowns, err := h.breakdownService.GetExpenseBreakdowns()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, breakdowns)
}

// NetWorth handles GET requests for the household net worth valuation:
// every holding valued in both currencies plus per-owner totals.
//
// Endpoint: GET /api/summary/networth
// Response: 200 OK with NetWorthResult
// Error: 500 Internal Server Error if the holdings cannot be loaded
func (h *SummaryHandler) NetWorth(w http.ResponseWriter, r *http.Request) {
	result, err := h.netWorthService.GetNetWorth(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateNetWorth.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// RateResponse represents the exchange-rate debug view.
type RateResponse struct {
	Rate     float64 `json:"rate"`
	Source   string  `json:"source"`
	Cached   bool    `json:"cached"`
	Fallback bool    `json:"fallback"`
}

// Rate handles GET requests for the cached USD exchange rate. Triggers a
// provider fetch when no rate is cached yet.
//
// Endpoint: GET /api/summary/rate
// Response: 200 OK with RateResponse
func (h *SummaryHandler) Rate(w http.ResponseWriter, r *http.Request) {
	_, cached, _ := h.gateway.RateInfo()
	rate := h.gateway.USDExchangeRate(r.Context())
	_, _, fallback := h.gateway.RateInfo()

	source := pricing.PreferredRateSource
	if fallback {
		source = "fallback"
	}

	response.RespondJSON(w, http.StatusOK, RateResponse{
		Rate:     rate,
		Source:   source,
		Cached:   cached,
		Fallback: fallback,
	})
}

// RecordSaved handles POST requests to append an entry to the saved-amount
// ledger feeding the cumulative savings figure.
//
// Endpoint: POST /api/summary/saved
// Request Body: RecordSavedAmountRequest (period, amount)
// Response: 201 Created with SavedAmount
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *SummaryHandler) RecordSaved(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RecordSavedAmountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRecordSavedAmount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.aggregationService.RecordSavedAmount(req.Period, req.Amount)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to record saved amount", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, entry)
}
