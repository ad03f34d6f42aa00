package model

import (
	"strings"
	"time"
)

// Asset type catalog. Free text is accepted from external stores, but the
// API only creates holdings with one of these values.
const (
	AssetCashARS = "Efectivo ARS"
	AssetCashUSD = "Efectivo USD"
	AssetStock   = "Acción"
	AssetCedear  = "CEDEAR"
	AssetFund    = "FCI"
	AssetBond    = "Bono"
	AssetCrypto  = "Crypto"
	AssetOther   = "Otro"
)

// AssetTypes lists the catalog in display order.
var AssetTypes = []string{
	AssetCashARS, AssetCashUSD, AssetStock, AssetCedear,
	AssetFund, AssetBond, AssetCrypto, AssetOther,
}

// NeedsTicker reports whether an asset type is market-priced and therefore
// requires a ticker symbol.
func NeedsTicker(assetType string) bool {
	switch assetType {
	case AssetStock, AssetCedear, AssetFund, AssetBond, AssetCrypto:
		return true
	}
	return false
}

// Holding is a raw unit of household wealth as stored: cash, a security, or
// crypto. It carries no valuation; see ValuedHolding.
type Holding struct {
	ID              string    `json:"id"`
	Owner           string    `json:"owner"`
	AssetType       string    `json:"assetType"`
	Description     string    `json:"description,omitempty"`
	Quantity        float64   `json:"quantity"`
	Ticker          string    `json:"ticker,omitempty"`
	BaseCurrency    string    `json:"baseCurrency"`
	AcquisitionDate time.Time `json:"acquisitionDate"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// PricingTicker returns the symbol used for market pricing: the explicit
// ticker when present, otherwise the base currency (priced holdings store
// their ticker there).
func (h Holding) PricingTicker() string {
	if h.Ticker != "" {
		return h.Ticker
	}
	return h.BaseCurrency
}

// IsUSDDenominatedType reports whether the asset-type label marks the
// holding as USD-quoted (depositary receipts and crypto).
func (h Holding) IsUSDDenominatedType() bool {
	label := strings.ToLower(h.AssetType)
	return strings.Contains(label, "cedear") || strings.Contains(label, "crypto")
}

// ValuedHolding is a holding plus its transient valuation, recomputed on
// every pass and never written back to the store.
//
// The type is deliberately distinct from Holding: a valued collection cannot
// be fed back into the valuation engine as raw input, which is how a prior
// implementation ended up compounding values across passes.
type ValuedHolding struct {
	Holding
	ValueLocal float64 `json:"valueArs"`
	ValueUSD   float64 `json:"valueUsd"`
}
