package testutil

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/pricing"
)

var errSymbolUnknown = errors.New("symbol unknown")

// MockRateClient is a mock implementation of pricing.RateClient for testing.
// It returns predefined quotes instead of calling the provider.
type MockRateClient struct {
	// Quotes is the quote list to return
	Quotes []pricing.RateQuote
	// Err is the error to return instead of quotes
	Err error

	calls atomic.Int32
}

// NewMockRateClient creates a mock rate client whose preferred-source buy
// quote is the given rate.
func NewMockRateClient(blueBuy float64) *MockRateClient {
	return &MockRateClient{
		Quotes: []pricing.RateQuote{
			{Source: "OFICIAL", Buy: blueBuy * 0.7, Sell: blueBuy * 0.72},
			{Source: "BLUE", Buy: blueBuy, Sell: blueBuy * 1.02},
		},
	}
}

// FetchQuotes returns the configured quotes or error and counts the call.
func (m *MockRateClient) FetchQuotes(_ context.Context) ([]pricing.RateQuote, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Quotes, nil
}

// Calls reports how many times FetchQuotes was invoked.
func (m *MockRateClient) Calls() int {
	return int(m.calls.Load())
}

// MockMarketClient is a mock implementation of pricing.MarketClient for
// testing. Prices maps upper-case symbols to quotes; symbols not in the map
// yield Err (or a zero-price error when Err is nil).
type MockMarketClient struct {
	// Prices maps symbol -> unit price
	Prices map[string]float64
	// Err is the error to return for every lookup
	Err error
	// Delay simulates provider latency, useful for single-flight tests
	Delay time.Duration

	calls atomic.Int32
}

// FetchQuote returns the configured price for the symbol and counts the call.
func (m *MockMarketClient) FetchQuote(_ context.Context, symbol string, _ bool) (float64, error) {
	m.calls.Add(1)
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	if m.Err != nil {
		return 0, m.Err
	}
	if price, ok := m.Prices[symbol]; ok {
		return price, nil
	}
	return 0, errSymbolUnknown
}

// Calls reports how many times FetchQuote was invoked.
func (m *MockMarketClient) Calls() int {
	return int(m.calls.Load())
}
