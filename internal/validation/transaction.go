package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/api/request"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/finance"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
)

// ValidTransactionKind contains the allowed transaction kind values.
var ValidTransactionKind = map[string]bool{
	model.KindIncome: true, model.KindExpense: true,
}

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - kind: Must be one of: income, expense
//   - date: Must be in YYYY-MM-DD format
//   - concept: Must be non-empty
//   - amountLocal: Must parse to a finite number
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Kind) == "" {
		errors["kind"] = "kind is required"
	} else if !ValidTransactionKind[req.Kind] {
		errors["kind"] = fmt.Sprintf("invalid kind: %s", req.Kind)
	}

	validateDateField(errors, "date", req.Date)

	if strings.TrimSpace(req.Concept) == "" {
		errors["concept"] = "concept is required"
	}

	if _, ok := finance.ParseAmountString(req.AmountLocal); !ok {
		errors["amountLocal"] = fmt.Sprintf("not a parseable amount: %s", req.AmountLocal)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		validateDateField(errors, "date", *req.Date)
	}
	if req.Concept != nil {
		if strings.TrimSpace(*req.Concept) == "" {
			errors["concept"] = "concept is required"
		}
	}
	if req.AmountLocal != nil {
		if _, ok := finance.ParseAmountString(*req.AmountLocal); !ok {
			errors["amountLocal"] = fmt.Sprintf("not a parseable amount: %s", *req.AmountLocal)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateCopyTransaction checks the month delta of a copy request. Only the
// adjacent periods are reachable.
func ValidateCopyTransaction(req request.CopyTransactionRequest) error {
	if req.MonthDelta != -1 && req.MonthDelta != 1 {
		return &Error{Fields: map[string]string{
			"monthDelta": fmt.Sprintf("monthDelta must be -1 or 1, got %d", req.MonthDelta),
		}}
	}
	return nil
}

func validateDateField(errors map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errors[field] = fmt.Sprintf("%s is required", field)
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errors[field] = err.Error()
	}
}
