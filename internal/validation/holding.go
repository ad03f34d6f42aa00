package validation

import (
	"fmt"
	"strings"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
)

// ValidAssetType contains the allowed asset type values.
var ValidAssetType = func() map[string]bool {
	types := make(map[string]bool, len(model.AssetTypes))
	for _, t := range model.AssetTypes {
		types[t] = true
	}
	return types
}()

// ValidateCreateHolding validates a holding creation request.
//
// Required fields:
//   - owner: Must be non-empty
//   - assetType: Must be one of the asset catalog values
//   - ticker: Required for market-priced asset types
//   - quantity: Must be non-negative
//   - acquisitionDate: Must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Owner) == "" {
		errors["owner"] = "owner is required"
	}

	if strings.TrimSpace(req.AssetType) == "" {
		errors["assetType"] = "assetType is required"
	} else if !ValidAssetType[req.AssetType] {
		errors["assetType"] = fmt.Sprintf("invalid assetType: %s", req.AssetType)
	} else if model.NeedsTicker(req.AssetType) && strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = fmt.Sprintf("ticker is required for %s", req.AssetType)
	}

	if req.Quantity < 0 {
		errors["quantity"] = "quantity must not be negative"
	}

	validateDateField(errors, "acquisitionDate", req.AcquisitionDate)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateHolding validates a holding update request. All fields are
// optional, but if provided, they must meet the same constraints as create.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	errors := make(map[string]string)

	if req.Owner != nil {
		if strings.TrimSpace(*req.Owner) == "" {
			errors["owner"] = "owner is required"
		}
	}
	if req.AssetType != nil {
		if !ValidAssetType[*req.AssetType] {
			errors["assetType"] = fmt.Sprintf("invalid assetType: %s", *req.AssetType)
		} else if model.NeedsTicker(*req.AssetType) && req.Ticker != nil && strings.TrimSpace(*req.Ticker) == "" {
			errors["ticker"] = fmt.Sprintf("ticker is required for %s", *req.AssetType)
		}
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			errors["quantity"] = "quantity must not be negative"
		}
	}
	if req.AcquisitionDate != nil {
		validateDateField(errors, "acquisitionDate", *req.AcquisitionDate)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
