package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// HTTPForexProvider fetches named exchange rates from an
// exchangerate-host-compatible API, always against the USD base.
type HTTPForexProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPForexProvider creates a new forex rate provider
func NewHTTPForexProvider(baseURL string) ForexRateProvider {
	if baseURL == "" {
		baseURL = "https://api.exchangerate.host"
	}
	return &HTTPForexProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// LatestRates returns the latest rates keyed by ISO-like currency/metal
// code. Metal codes are quoted as ounces per USD by the upstream API.
func (p *HTTPForexProvider) LatestRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	url := p.baseURL + "/latest?base=USD&symbols=TRY,EUR,XAU,XAG"

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forex API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Base  string                     `json:"base"`
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode forex response: %w", err)
	}
	if payload.Rates == nil {
		return nil, fmt.Errorf("forex response missing rates")
	}
	return payload.Rates, nil
}
