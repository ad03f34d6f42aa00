package validation

import (
	"fmt"
	"strings"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/finance"
)

// ValidateRecordSavedAmount validates a saved-amount ledger entry.
func ValidateRecordSavedAmount(req request.RecordSavedAmountRequest) error {
	errors := make(map[string]string)

	if finance.NormalizePeriod(req.Period) == "" {
		errors["period"] = fmt.Sprintf("not a recognizable period: %s", req.Period)
	}
	if _, ok := finance.ParseAmountString(req.Amount); !ok {
		errors["amount"] = fmt.Sprintf("not a parseable amount: %s", req.Amount)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateSetMarketKey validates the provider key admin request.
func ValidateSetMarketKey(req request.SetMarketKeyRequest) error {
	if strings.TrimSpace(req.APIKey) == "" {
		return &Error{Fields: map[string]string{"apiKey": "apiKey is required"}}
	}
	return nil
}
