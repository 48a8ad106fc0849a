package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinanceTickerProvider_TickerPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/price", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"symbol": "USDTTRY", "price": "30.50"},
			{"symbol": "BTCUSDT", "price": "60000.12"},
			{"symbol": "BROKEN", "price": "not-a-number"}
		]`))
	}))
	defer server.Close()

	provider := NewBinanceTickerProvider(server.URL)
	prices, err := provider.TickerPrices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "30.5", prices["USDTTRY"].String())
	assert.Equal(t, "60000.12", prices["BTCUSDT"].String())

	// Malformed entries are skipped, not fatal.
	_, ok := prices["BROKEN"]
	assert.False(t, ok)
}

func TestBinanceTickerProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	provider := NewBinanceTickerProvider(server.URL)
	_, err := provider.TickerPrices(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "418")
}

func TestHTTPForexProvider_LatestRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base": "USD", "rates": {"TRY": 30.1, "EUR": 0.91, "XAU": 0.00049, "XAG": 0.041}}`))
	}))
	defer server.Close()

	provider := NewHTTPForexProvider(server.URL)
	rates, err := provider.LatestRates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "30.1", rates["TRY"].String())
	assert.Equal(t, "0.91", rates["EUR"].String())
}

func TestHTTPForexProvider_MissingRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base": "USD"}`))
	}))
	defer server.Close()

	provider := NewHTTPForexProvider(server.URL)
	_, err := provider.LatestRates(context.Background())
	require.Error(t, err)
}
