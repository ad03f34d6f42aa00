package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test
// transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	income := testutil.NewTransaction().Build(t, db)
//
//	// Customized record
//	expense := testutil.NewTransaction().
//	    Expense().
//	    WithDate("2024-03-15").
//	    WithAmount("85.000,00").
//	    WithOwner("Ella").
//	    Build(t, db)
type TransactionBuilder struct {
	ID                string
	Kind              string
	Date              string
	Concept           string
	Owner             string
	MovementType      string
	ExchangeRateLabel string
	AmountLocal       string
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:           MakeID(),
		Kind:         model.KindIncome,
		Date:         "2024-03-10",
		Concept:      "Test concept",
		Owner:        "Yo",
		MovementType: "Fijo",
		AmountLocal:  "1000",
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// Income marks the record as an income.
func (b *TransactionBuilder) Income() *TransactionBuilder {
	b.Kind = model.KindIncome
	return b
}

// Expense marks the record as an expense.
func (b *TransactionBuilder) Expense() *TransactionBuilder {
	b.Kind = model.KindExpense
	return b
}

// WithDate sets the date (YYYY-MM-DD).
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// WithConcept sets the concept.
func (b *TransactionBuilder) WithConcept(concept string) *TransactionBuilder {
	b.Concept = concept
	return b
}

// WithOwner sets the owner.
func (b *TransactionBuilder) WithOwner(owner string) *TransactionBuilder {
	b.Owner = owner
	return b
}

// WithMovementType sets the movement type.
func (b *TransactionBuilder) WithMovementType(movementType string) *TransactionBuilder {
	b.MovementType = movementType
	return b
}

// WithRateLabel sets the exchange-rate label.
func (b *TransactionBuilder) WithRateLabel(label string) *TransactionBuilder {
	b.ExchangeRateLabel = label
	return b
}

// WithAmount sets the raw local-currency amount.
func (b *TransactionBuilder) WithAmount(amount string) *TransactionBuilder {
	b.AmountLocal = amount
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO cash_transaction (id, kind, date, concept, owner, movement_type, exchange_rate_label, amount_local)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Kind, b.Date, b.Concept, b.Owner, b.MovementType, b.ExchangeRateLabel, b.AmountLocal)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("Invalid test transaction date %q: %v", b.Date, err)
	}

	return model.Transaction{
		ID:                b.ID,
		Kind:              b.Kind,
		Date:              date,
		Concept:           b.Concept,
		Owner:             b.Owner,
		MovementType:      b.MovementType,
		ExchangeRateLabel: b.ExchangeRateLabel,
		AmountLocal:       b.AmountLocal,
	}
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	holding := testutil.NewHolding().
//	    WithAssetType(model.AssetCedear).
//	    WithTicker("TSLA").
//	    WithQuantity(3).
//	    Build(t, db)
type HoldingBuilder struct {
	ID              string
	Owner           string
	AssetType       string
	Description     string
	Ticker          string
	Quantity        float64
	BaseCurrency    string
	AcquisitionDate string
}

// NewHolding creates a HoldingBuilder defaulting to local cash.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		ID:              MakeID(),
		Owner:           "Yo",
		AssetType:       model.AssetCashARS,
		Quantity:        1000,
		BaseCurrency:    "ARS",
		AcquisitionDate: "2024-01-15",
	}
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.ID = id
	return b
}

// WithOwner sets the owner.
func (b *HoldingBuilder) WithOwner(owner string) *HoldingBuilder {
	b.Owner = owner
	return b
}

// WithAssetType sets the asset type.
func (b *HoldingBuilder) WithAssetType(assetType string) *HoldingBuilder {
	b.AssetType = assetType
	return b
}

// WithDescription sets the description.
func (b *HoldingBuilder) WithDescription(description string) *HoldingBuilder {
	b.Description = description
	return b
}

// WithTicker sets the ticker and mirrors it into the base currency, the way
// the API stores priced holdings.
func (b *HoldingBuilder) WithTicker(ticker string) *HoldingBuilder {
	b.Ticker = ticker
	b.BaseCurrency = ticker
	return b
}

// WithQuantity sets the quantity.
func (b *HoldingBuilder) WithQuantity(quantity float64) *HoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithBaseCurrency sets the base currency.
func (b *HoldingBuilder) WithBaseCurrency(currency string) *HoldingBuilder {
	b.BaseCurrency = currency
	return b
}

// WithAcquisitionDate sets the acquisition date (YYYY-MM-DD).
func (b *HoldingBuilder) WithAcquisitionDate(date string) *HoldingBuilder {
	b.AcquisitionDate = date
	return b
}

// CashUSD configures the holding as a USD cash position.
func (b *HoldingBuilder) CashUSD() *HoldingBuilder {
	b.AssetType = model.AssetCashUSD
	b.Ticker = ""
	b.BaseCurrency = "USD"
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	query := `
		INSERT INTO asset_holding (id, owner, asset_type, description, quantity, ticker, base_currency, acquisition_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Owner, b.AssetType, b.Description, b.Quantity, b.Ticker, b.BaseCurrency, b.AcquisitionDate)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	date, err := time.Parse("2006-01-02", b.AcquisitionDate)
	if err != nil {
		t.Fatalf("Invalid test holding date %q: %v", b.AcquisitionDate, err)
	}

	return model.Holding{
		ID:              b.ID,
		Owner:           b.Owner,
		AssetType:       b.AssetType,
		Description:     b.Description,
		Ticker:          b.Ticker,
		Quantity:        b.Quantity,
		BaseCurrency:    b.BaseCurrency,
		AcquisitionDate: date,
	}
}

// CreateSavedAmount inserts a saved-amount ledger entry.
//
// Example usage:
//
//	testutil.CreateSavedAmount(t, db, "2024-01", "120000")
func CreateSavedAmount(t *testing.T, db *sql.DB, period, amount string) model.SavedAmount {
	t.Helper()

	entry := model.SavedAmount{
		ID:     MakeID(),
		Period: period,
		Amount: amount,
	}

	_, err := db.Exec(
		`INSERT INTO saved_amount (id, period, amount) VALUES (?, ?, ?)`,
		entry.ID, entry.Period, entry.Amount,
	)
	if err != nil {
		t.Fatalf("Failed to create test saved amount: %v", err)
	}

	return entry
}
