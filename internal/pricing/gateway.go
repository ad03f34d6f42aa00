package pricing

import (
	"context"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FallbackUSDRate is the documented substitute used when the exchange-rate
// provider is unavailable or its response lacks the preferred source.
const FallbackUSDRate = 1450.0

// PreferredRateSource names the quote source whose buy value is used for
// valuation.
const PreferredRateSource = "BLUE"

// DefaultMockPrice is the inert per-unit price returned for symbols missing
// from the mock table when the provider cannot be used.
const DefaultMockPrice = 1.0

// mockPrices is the fixed price table served when no market API key is
// configured or a fetch fails. Values are in the symbol's base currency.
var mockPrices = map[string]float64{
	"GGAL": 1500,  // ARS, local equity
	"BMA":  1800,  // ARS, local equity
	"TSLA": 240,   // USD, depositary receipt base
	"BTC":  68000, // USD
	"ETH":  68000, // USD
}

// usdDenominatedTickers lists symbols known to be quoted in USD regardless
// of the holding's asset-type label.
var usdDenominatedTickers = map[string]bool{
	"BTC":  true,
	"ETH":  true,
	"TSLA": true,
	"AAPL": true,
}

// cryptoTickers lists symbols routed to the crypto provider endpoint.
var cryptoTickers = map[string]bool{
	"BTC":  true,
	"ETH":  true,
	"USDT": true,
	"SOL":  true,
	"ADA":  true,
	"DOGE": true,
}

// IsUSDDenominatedTicker reports whether the symbol is known to be quoted in
// USD (crypto symbols and known USD-quoted tickers).
func IsUSDDenominatedTicker(ticker string) bool {
	return usdDenominatedTickers[strings.ToUpper(ticker)]
}

// IsCryptoTicker reports whether the symbol should be priced through the
// crypto endpoint.
func IsCryptoTicker(ticker string) bool {
	return cryptoTickers[strings.ToUpper(ticker)]
}

// Gateway fronts the exchange-rate and market-data providers with a
// process-local cache.
//
// The USD rate is fetched at most once per session (until Invalidate) and
// shared by every holding of a valuation pass. Per-ticker prices are
// memoized, with concurrent fetches for the same ticker collapsed into one
// provider call. Failures never propagate: the rate degrades to
// FallbackUSDRate and prices degrade to the mock table.
type Gateway struct {
	rates     RateClient
	market    MarketClient
	hasAPIKey bool

	mu           sync.Mutex
	rate         float64
	rateFetched  bool
	rateFallback bool
	prices       map[string]float64

	flight singleflight.Group
}

// NewGateway creates a pricing gateway over the given provider clients.
// hasAPIKey=false routes every price lookup straight to the mock table.
func NewGateway(rates RateClient, market MarketClient, hasAPIKey bool) *Gateway {
	return &Gateway{
		rates:     rates,
		market:    market,
		hasAPIKey: hasAPIKey,
		prices:    make(map[string]float64),
	}
}

// USDExchangeRate returns the cached USD→local rate, fetching it on first
// use. On any fetch or extraction failure the fallback constant is cached
// and returned; the caller never sees the failure.
func (g *Gateway) USDExchangeRate(ctx context.Context) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rateFetched {
		return g.rate
	}

	rate, err := g.fetchPreferredRate(ctx)
	if err != nil {
		log.Printf("exchange rate lookup failed, using fallback %v: %v", FallbackUSDRate, err)
		g.rate = FallbackUSDRate
		g.rateFallback = true
	} else {
		g.rate = rate
		g.rateFallback = false
	}
	g.rateFetched = true

	return g.rate
}

func (g *Gateway) fetchPreferredRate(ctx context.Context) (float64, error) {
	quotes, err := g.rates.FetchQuotes(ctx)
	if err != nil {
		return 0, err
	}

	for _, quote := range quotes {
		if strings.EqualFold(quote.Source, PreferredRateSource) && quote.Buy > 0 {
			return quote.Buy, nil
		}
	}
	return 0, errNoPreferredSource
}

// RateInfo reports the cached rate together with whether it was fetched yet
// and whether it is the fallback constant. Used by the debug endpoint.
func (g *Gateway) RateInfo() (rate float64, fetched, fallback bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rate, g.rateFetched, g.rateFallback
}

// InvalidateRate drops the cached exchange rate so the next lookup hits the
// provider again. Called by the scheduled refresh job.
func (g *Gateway) InvalidateRate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rateFetched = false
	g.rateFallback = false
}

// StockPrice returns the unit price for a ticker in its base currency.
// Results are memoized, concurrent lookups for the same ticker are
// collapsed, and every failure degrades to the mock table rather than
// surfacing.
func (g *Gateway) StockPrice(ctx context.Context, ticker string) float64 {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if symbol == "" {
		return DefaultMockPrice
	}

	g.mu.Lock()
	if price, ok := g.prices[symbol]; ok {
		g.mu.Unlock()
		return price
	}
	g.mu.Unlock()

	result, _, _ := g.flight.Do(symbol, func() (any, error) {
		price := g.lookupPrice(ctx, symbol)
		g.mu.Lock()
		g.prices[symbol] = price
		g.mu.Unlock()
		return price, nil
	})

	return result.(float64)
}

func (g *Gateway) lookupPrice(ctx context.Context, symbol string) float64 {
	if !g.hasAPIKey {
		return mockPrice(symbol)
	}

	price, err := g.market.FetchQuote(ctx, symbol, IsCryptoTicker(symbol))
	if err != nil {
		log.Printf("price lookup for %s failed, using mock price: %v", symbol, err)
		return mockPrice(symbol)
	}
	return price
}

// ResetPrices clears the per-ticker memo. Called together with
// InvalidateRate by the scheduled refresh.
func (g *Gateway) ResetPrices() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prices = make(map[string]float64)
}

func mockPrice(symbol string) float64 {
	if price, ok := mockPrices[symbol]; ok {
		return price
	}
	return DefaultMockPrice
}
