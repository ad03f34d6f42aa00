package model

import "time"

// SavedAmount is one entry of the legacy monthly-savings ledger. The ledger
// predates net-worth valuation and only feeds the cumulative-savings figure.
type SavedAmount struct {
	ID        string    `json:"id"`
	Period    string    `json:"period"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
