package handlers

import (
	"net/http"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/response"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/service"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/validation"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService   *service.SystemService
	settingsService *service.SettingsService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, settingsService *service.SettingsService) *SystemHandler {
	return &SystemHandler{
		systemService:   systemService,
		settingsService: settingsService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	// Check database health
	if err := h.systemService.CheckHealth(); err != nil {
		response := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	// System is healthy
	response := HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
	respondJSON(w, http.StatusOK, response)
}

// VersionResponse represents the version check response
type VersionResponse struct {
	AppVersion string `json:"app_version"`
}

// Version handles GET requests to retrieve the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionResponse
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{
		AppVersion: h.systemService.CheckVersion(),
	})
}

// SetMarketKey handles PUT requests to store the market data provider key.
// The key is encrypted at rest when an encryption key is configured and is
// picked up by the pricing gateway on the next startup.
//
// Endpoint: PUT /api/system/market-key
// Request Body: SetMarketKeyRequest (apiKey)
// Response: 204 No Content
// Error: 400 Bad Request if the body is invalid or the key is empty
// Error: 500 Internal Server Error if storing fails
func (h *SystemHandler) SetMarketKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetMarketKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSetMarketKey(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.settingsService.SetMarketAPIKey(req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to store market key", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
