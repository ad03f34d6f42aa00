package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrHoldingNotFound indicates that an asset holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrSettingNotFound indicates that a system setting key has no stored value.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidKind indicates a transaction kind outside income/expense.
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrTickerRequired indicates a market-priced asset type without a ticker symbol.
	ErrTickerRequired = errors.New("ticker is required for priced asset types")

	// ErrInvalidPeriod indicates a period parameter that does not normalize to YYYY-MM.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidMonthDelta indicates a copy request with a month delta other than -1 or 1.
	ErrInvalidMonthDelta = errors.New("month delta must be -1 or 1")

	// ErrMissingIdentifier indicates an external record without any recognizable
	// identifier field. Guessing an identifier risks mutating the wrong record,
	// so this is surfaced instead of recovered.
	ErrMissingIdentifier = errors.New("record has no recognizable identifier field")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRetrieveHoldings     = errors.New("failed to retrieve holdings")
	ErrFailedToRetrieveHolding      = errors.New("failed to retrieve holding")
	ErrFailedToCalculateNetWorth    = errors.New("failed to calculate net worth")
	ErrFailedToBuildSummary         = errors.New("failed to build summary")
	ErrFailedToStoreSetting         = errors.New("failed to store setting")
)
