package pricing_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/pricing"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/testutil"
)

// TestGateway_USDExchangeRate tests the cached rate lookup.
//
// WHY: every holding of a valuation pass must see the same rate, and a
// provider outage must degrade to the documented fallback instead of
// aborting valuation.
func TestGateway_USDExchangeRate(t *testing.T) {
	t.Run("extracts the preferred source buy quote", func(t *testing.T) {
		rates := testutil.NewMockRateClient(1480)
		gateway := pricing.NewGateway(rates, &testutil.MockMarketClient{}, false)

		rate := gateway.USDExchangeRate(context.Background())
		if rate != 1480 {
			t.Errorf("USDExchangeRate = %v; want 1480", rate)
		}
	})

	t.Run("matches the source case-insensitively", func(t *testing.T) {
		rates := &testutil.MockRateClient{
			Quotes: []pricing.RateQuote{{Source: "blue", Buy: 1500}},
		}
		gateway := pricing.NewGateway(rates, &testutil.MockMarketClient{}, false)

		if rate := gateway.USDExchangeRate(context.Background()); rate != 1500 {
			t.Errorf("USDExchangeRate = %v; want 1500", rate)
		}
	})

	t.Run("caches the rate for the session", func(t *testing.T) {
		rates := testutil.NewMockRateClient(1480)
		gateway := pricing.NewGateway(rates, &testutil.MockMarketClient{}, false)

		gateway.USDExchangeRate(context.Background())
		gateway.USDExchangeRate(context.Background())
		gateway.USDExchangeRate(context.Background())

		if rates.Calls() != 1 {
			t.Errorf("Expected 1 provider call, got %d", rates.Calls())
		}
	})

	t.Run("falls back on fetch failure without surfacing the error", func(t *testing.T) {
		rates := &testutil.MockRateClient{Err: errors.New("network down")}
		gateway := pricing.NewGateway(rates, &testutil.MockMarketClient{}, false)

		rate := gateway.USDExchangeRate(context.Background())
		if rate != pricing.FallbackUSDRate {
			t.Errorf("USDExchangeRate = %v; want fallback %v", rate, pricing.FallbackUSDRate)
		}

		_, fetched, fallback := gateway.RateInfo()
		if !fetched || !fallback {
			t.Errorf("RateInfo fetched=%v fallback=%v; want true, true", fetched, fallback)
		}
	})

	t.Run("falls back when the preferred source is missing", func(t *testing.T) {
		rates := &testutil.MockRateClient{
			Quotes: []pricing.RateQuote{{Source: "OFICIAL", Buy: 950}},
		}
		gateway := pricing.NewGateway(rates, &testutil.MockMarketClient{}, false)

		if rate := gateway.USDExchangeRate(context.Background()); rate != pricing.FallbackUSDRate {
			t.Errorf("USDExchangeRate = %v; want fallback %v", rate, pricing.FallbackUSDRate)
		}
	})

	t.Run("invalidation forces a refetch", func(t *testing.T) {
		rates := testutil.NewMockRateClient(1480)
		gateway := pricing.NewGateway(rates, &testutil.MockMarketClient{}, false)

		gateway.USDExchangeRate(context.Background())
		gateway.InvalidateRate()
		gateway.USDExchangeRate(context.Background())

		if rates.Calls() != 2 {
			t.Errorf("Expected 2 provider calls after invalidation, got %d", rates.Calls())
		}
	})
}

// TestGateway_StockPrice tests per-ticker price lookup and memoization.
func TestGateway_StockPrice(t *testing.T) {
	t.Run("serves the mock table when no API key is configured", func(t *testing.T) {
		gateway := pricing.NewGateway(testutil.NewMockRateClient(1450), &testutil.MockMarketClient{}, false)

		if price := gateway.StockPrice(context.Background(), "GGAL"); price != 1500 {
			t.Errorf("StockPrice(GGAL) = %v; want 1500", price)
		}
		if price := gateway.StockPrice(context.Background(), "btc"); price != 68000 {
			t.Errorf("StockPrice(btc) = %v; want 68000", price)
		}
		if price := gateway.StockPrice(context.Background(), "UNKNOWN"); price != pricing.DefaultMockPrice {
			t.Errorf("StockPrice(UNKNOWN) = %v; want %v", price, pricing.DefaultMockPrice)
		}
	})

	t.Run("uses the provider when configured and memoizes the result", func(t *testing.T) {
		market := &testutil.MockMarketClient{Prices: map[string]float64{"GGAL": 1750}}
		gateway := pricing.NewGateway(testutil.NewMockRateClient(1450), market, true)

		first := gateway.StockPrice(context.Background(), "GGAL")
		second := gateway.StockPrice(context.Background(), "ggal")

		if first != 1750 || second != 1750 {
			t.Errorf("StockPrice = %v, %v; want 1750 both times", first, second)
		}
		if market.Calls() != 1 {
			t.Errorf("Expected 1 provider call, got %d", market.Calls())
		}
	})

	t.Run("degrades to the mock table on provider failure", func(t *testing.T) {
		market := &testutil.MockMarketClient{Err: errors.New("timeout")}
		gateway := pricing.NewGateway(testutil.NewMockRateClient(1450), market, true)

		if price := gateway.StockPrice(context.Background(), "TSLA"); price != 240 {
			t.Errorf("StockPrice(TSLA) = %v; want mock 240", price)
		}
	})

	t.Run("collapses concurrent fetches for the same ticker", func(t *testing.T) {
		market := &testutil.MockMarketClient{
			Prices: map[string]float64{"GGAL": 1750},
			Delay:  20 * time.Millisecond,
		}
		gateway := pricing.NewGateway(testutil.NewMockRateClient(1450), market, true)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if price := gateway.StockPrice(context.Background(), "GGAL"); price != 1750 {
					t.Errorf("StockPrice(GGAL) = %v; want 1750", price)
				}
			}()
		}
		wg.Wait()

		if market.Calls() != 1 {
			t.Errorf("Expected 1 provider call across concurrent lookups, got %d", market.Calls())
		}
	})

	t.Run("reset clears the memo", func(t *testing.T) {
		market := &testutil.MockMarketClient{Prices: map[string]float64{"GGAL": 1750}}
		gateway := pricing.NewGateway(testutil.NewMockRateClient(1450), market, true)

		gateway.StockPrice(context.Background(), "GGAL")
		gateway.ResetPrices()
		gateway.StockPrice(context.Background(), "GGAL")

		if market.Calls() != 2 {
			t.Errorf("Expected 2 provider calls after reset, got %d", market.Calls())
		}
	})
}

func TestTickerClassification(t *testing.T) {
	t.Run("known USD tickers", func(t *testing.T) {
		for _, symbol := range []string{"BTC", "eth", "TSLA", "AAPL"} {
			if !pricing.IsUSDDenominatedTicker(symbol) {
				t.Errorf("Expected %s to be USD denominated", symbol)
			}
		}
		if pricing.IsUSDDenominatedTicker("GGAL") {
			t.Error("GGAL should not be USD denominated")
		}
	})

	t.Run("crypto routing", func(t *testing.T) {
		if !pricing.IsCryptoTicker("btc") {
			t.Error("btc should route to the crypto endpoint")
		}
		if pricing.IsCryptoTicker("TSLA") {
			t.Error("TSLA should not route to the crypto endpoint")
		}
	})
}
