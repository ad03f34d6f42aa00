// Package pricing talks to the external exchange-rate and market-data
// providers and fronts them with a session cache. Every failure is recovered
// locally into a documented fallback; callers are never exposed to provider
// errors.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RateClient fetches the list of named-source USD quotes from the
// exchange-rate provider. The interface enables mock implementations in
// tests.
type RateClient interface {
	FetchQuotes(ctx context.Context) ([]RateQuote, error)
}

// HTTPRateClient is the production RateClient backed by the public quotes
// endpoint.
type HTTPRateClient struct {
	url        string
	httpClient *http.Client
}

// NewHTTPRateClient creates a rate client for the given quotes URL.
func NewHTTPRateClient(url string) *HTTPRateClient {
	return &HTTPRateClient{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchQuotes performs a single lookup against the provider and returns all
// named-source quotes it responded with.
func (c *HTTPRateClient) FetchQuotes(ctx context.Context) ([]RateQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
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
		return nil, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var quotes []RateQuote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("failed to parse exchange rate response: %w", err)
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("exchange rate API returned no quotes")
	}

	return quotes, nil
}
