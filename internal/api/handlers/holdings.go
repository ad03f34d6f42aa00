package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/response"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/service"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/validation"
)

// HoldingHandler handles HTTP requests for the asset inventory endpoints.
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// Holdings handles GET requests to retrieve all holdings, newest
// acquisitions first.
//
// Endpoint: GET /api/holding
// Response: 200 OK with array of Holding
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) Holdings(w http.ResponseWriter, _ *http.Request) {
	holdings, err := h.holdingService.GetHoldings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// GetHolding handles GET requests to retrieve a single holding by ID.
//
// Endpoint: GET /api/holding/{uuid}
// Response: 200 OK with Holding
// Error: 400 Bad Request if holding ID is invalid (validated by middleware)
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) GetHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	holding, err := h.holdingService.GetHolding(holdingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHolding.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// CreateHolding handles POST requests to add an asset to the inventory.
// The base currency is derived server-side from the asset type.
//
// Endpoint: POST /api/holding
// Request Body: CreateHoldingRequest (owner, assetType, description, ticker, quantity, acquisitionDate)
// Response: 201 Created with Holding
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.CreateHolding(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, holding)
}

// UpdateHolding handles PUT requests to update an existing holding.
//
// Endpoint: PUT /api/holding/{uuid}
// Request Body: UpdateHoldingRequest (all fields optional)
// Response: 200 OK with updated Holding
// Error: 400 Bad Request if holding ID is invalid (validated by middleware), validation fails,
// or the merged holding is a market-priced type without a ticker
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if update fails
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.UpdateHolding(holdingID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTickerRequired) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrTickerRequired.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to update holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// DeleteHolding handles DELETE requests to remove a holding.
//
// Endpoint: DELETE /api/holding/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if holding ID is invalid (validated by middleware)
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if deletion fails
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	err := h.holdingService.DeleteHolding(holdingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
