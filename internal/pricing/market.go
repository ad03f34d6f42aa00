package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/finance"
)

// MarketClient fetches a unit price quote for a ticker symbol. Crypto
// symbols use a different provider endpoint and response shape than
// equity/ETF-like symbols.
type MarketClient interface {
	FetchQuote(ctx context.Context, symbol string, crypto bool) (float64, error)
}

// HTTPMarketClient is the production MarketClient backed by the market-data
// provider's query endpoint.
type HTTPMarketClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPMarketClient creates a market-data client. The API key is required
// by the provider; callers decide what to do when it is missing (the gateway
// falls back to mock prices without ever constructing a request).
func NewHTTPMarketClient(baseURL, apiKey string) *HTTPMarketClient {
	return &HTTPMarketClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchQuote returns the most recent quote for the symbol in its base
// currency. Equity symbols use the global-quote endpoint; crypto symbols use
// the currency-exchange endpoint against USD.
func (c *HTTPMarketClient) FetchQuote(ctx context.Context, symbol string, crypto bool) (float64, error) {
	if c.apiKey == "" {
		return 0, fmt.Errorf("market data API key not configured")
	}

	if crypto {
		return c.fetchCryptoQuote(ctx, symbol)
	}
	return c.fetchEquityQuote(ctx, symbol)
}

func (c *HTTPMarketClient) fetchEquityQuote(ctx context.Context, symbol string) (float64, error) {
	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", symbol)
	query.Set("apikey", c.apiKey)

	data, err := c.query(ctx, query)
	if err != nil {
		return 0, err
	}

	var response equityQuoteResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, fmt.Errorf("failed to parse equity quote: %w", err)
	}
	if response.ErrorMessage != "" {
		return 0, fmt.Errorf("market data error: %s", response.ErrorMessage)
	}
	if response.Note != "" {
		return 0, fmt.Errorf("market data throttled: %s", response.Note)
	}

	price, ok := finance.ParseAmountString(response.GlobalQuote.Price)
	if !ok || price <= 0 {
		return 0, fmt.Errorf("no price returned for symbol %s", symbol)
	}
	return price, nil
}

func (c *HTTPMarketClient) fetchCryptoQuote(ctx context.Context, symbol string) (float64, error) {
	query := url.Values{}
	query.Set("function", "CURRENCY_EXCHANGE_RATE")
	query.Set("from_currency", symbol)
	query.Set("to_currency", "USD")
	query.Set("apikey", c.apiKey)

	data, err := c.query(ctx, query)
	if err != nil {
		return 0, err
	}

	var response cryptoQuoteResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, fmt.Errorf("failed to parse crypto quote: %w", err)
	}
	if response.ErrorMessage != "" {
		return 0, fmt.Errorf("market data error: %s", response.ErrorMessage)
	}
	if response.Note != "" {
		return 0, fmt.Errorf("market data throttled: %s", response.Note)
	}

	price, ok := finance.ParseAmountString(response.ExchangeRate.Rate)
	if !ok || price <= 0 {
		return 0, fmt.Errorf("no rate returned for symbol %s", symbol)
	}
	return price, nil
}

// query executes a request against the provider and returns the raw body.
func (c *HTTPMarketClient) query(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market data API returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
