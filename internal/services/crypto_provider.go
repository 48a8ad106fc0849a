package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// BinanceTickerProvider fetches the bulk spot ticker listing from a
// Binance-compatible API (no API key required).
type BinanceTickerProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewBinanceTickerProvider creates a new Binance ticker provider
func NewBinanceTickerProvider(baseURL string) CryptoTickerProvider {
	if baseURL == "" {
		baseURL = "https://api.binance.com"
	}
	return &BinanceTickerProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// TickerPrices returns last prices for every listed pair, keyed by the
// exchange's "BASEQUOTE" pair symbol.
func (p *BinanceTickerProvider) TickerPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	url := p.baseURL + "/api/v3/ticker/price"

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tickers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ticker API returned status %d", resp.StatusCode)
	}

	var payload []struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode ticker response: %w", err)
	}

	prices := make(map[string]decimal.Decimal, len(payload))
	for _, t := range payload {
		price, err := decimal.NewFromString(t.Price)
		if err != nil {
			// skip malformed entries, the rest of the listing is still usable
			continue
		}
		prices[t.Symbol] = price
	}
	return prices, nil
}
