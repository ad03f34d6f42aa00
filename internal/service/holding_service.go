package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/repository"
)

// HoldingService handles CRUD for the asset inventory.
type HoldingService struct {
	holdingRepo *repository.HoldingRepository
}

// NewHoldingService creates a new HoldingService.
func NewHoldingService(holdingRepo *repository.HoldingRepository) *HoldingService {
	return &HoldingService{holdingRepo: holdingRepo}
}

// GetHoldings lists all holdings, newest acquisitions first.
func (s *HoldingService) GetHoldings() ([]model.Holding, error) {
	return s.holdingRepo.GetHoldings()
}

// GetHolding retrieves a single holding.
func (s *HoldingService) GetHolding(id string) (model.Holding, error) {
	holding, err := s.holdingRepo.GetHolding(id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to retrieve holding: %w", err)
	}
	return holding, nil
}

// CreateHolding validates and persists a new holding. The base currency is
// derived from the asset type rather than taken from the caller, so cash
// rows always carry their currency and priced rows carry their ticker.
func (s *HoldingService) CreateHolding(req request.CreateHoldingRequest) (model.Holding, error) {
	date, err := time.Parse("2006-01-02", req.AcquisitionDate)
	if err != nil {
		return model.Holding{}, fmt.Errorf("invalid acquisition date: %w", err)
	}

	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	holding := model.Holding{
		ID:              uuid.NewString(),
		Owner:           req.Owner,
		AssetType:       req.AssetType,
		Description:     req.Description,
		Ticker:          ticker,
		Quantity:        req.Quantity,
		BaseCurrency:    deriveBaseCurrency(req.AssetType, ticker),
		AcquisitionDate: date,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.holdingRepo.CreateHolding(holding); err != nil {
		return model.Holding{}, err
	}
	return holding, nil
}

// UpdateHolding overwrites the editable fields of an existing holding and
// re-derives its base currency. The merged result must still satisfy the
// ticker rule: a market-priced asset type cannot end up without a ticker.
func (s *HoldingService) UpdateHolding(id string, req request.UpdateHoldingRequest) (model.Holding, error) {
	existing, err := s.GetHolding(id)
	if err != nil {
		return model.Holding{}, err
	}

	if req.Owner != nil {
		existing.Owner = *req.Owner
	}
	if req.AssetType != nil {
		existing.AssetType = *req.AssetType
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Ticker != nil {
		existing.Ticker = strings.ToUpper(strings.TrimSpace(*req.Ticker))
	}
	if req.Quantity != nil {
		existing.Quantity = *req.Quantity
	}
	if req.AcquisitionDate != nil {
		date, err := time.Parse("2006-01-02", *req.AcquisitionDate)
		if err != nil {
			return model.Holding{}, fmt.Errorf("invalid acquisition date: %w", err)
		}
		existing.AcquisitionDate = date
	}
	if model.NeedsTicker(existing.AssetType) && existing.Ticker == "" {
		return model.Holding{}, apperrors.ErrTickerRequired
	}
	existing.BaseCurrency = deriveBaseCurrency(existing.AssetType, existing.Ticker)

	updated, err := s.holdingRepo.UpdateHolding(existing)
	if err != nil {
		return model.Holding{}, err
	}
	if !updated {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	return existing, nil
}

// DeleteHolding removes a holding.
func (s *HoldingService) DeleteHolding(id string) error {
	deleted, err := s.holdingRepo.DeleteHolding(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

func deriveBaseCurrency(assetType, ticker string) string {
	switch assetType {
	case model.AssetCashARS:
		return "ARS"
	case model.AssetCashUSD:
		return "USD"
	}
	if ticker != "" {
		return ticker
	}
	// No recognized currency: the valuation pass keeps the holding visible
	// but values it at zero.
	return ""
}
