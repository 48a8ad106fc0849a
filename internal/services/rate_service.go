package services

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/odemir/folio/internal/models"
)

// rateCacheEntry is the single process-wide cache cell. Data is either
// nil (never populated) or a fully keyed table.
type rateCacheEntry struct {
	table     models.RateTable
	fetchedAt time.Time
}

// RateServiceImpl aggregates the crypto and forex sources into one
// TRY-denominated rate table behind a short TTL cache. The cache cell is
// owned by the service instance; nothing here is package-level state.
type RateServiceImpl struct {
	crypto CryptoTickerProvider
	forex  ForexRateProvider
	logger *zap.Logger
	ttl    time.Duration
	now    func() time.Time

	mu    sync.Mutex
	cache rateCacheEntry
}

// NewRateService creates a new rate aggregation service with a 60-second
// cache window.
func NewRateService(crypto CryptoTickerProvider, forex ForexRateProvider, logger *zap.Logger) *RateServiceImpl {
	return &RateServiceImpl{
		crypto: crypto,
		forex:  forex,
		logger: logger,
		ttl:    60 * time.Second,
		now:    time.Now,
	}
}

// Rates returns the current rate table. Within the TTL window the cached
// table is returned without touching the upstream sources. Concurrent
// callers hitting an expired cache may recompute redundantly; each
// recomputation is independently valid and the last write wins.
func (s *RateServiceImpl) Rates(ctx context.Context) models.RateTable {
	s.mu.Lock()
	if s.cache.table != nil && s.now().Sub(s.cache.fetchedAt) < s.ttl {
		table := s.cache.table
		s.mu.Unlock()
		return table
	}
	s.mu.Unlock()

	// Fetch outside the lock so a slow upstream never blocks cache reads.
	table := s.compute(ctx)

	s.mu.Lock()
	s.cache = rateCacheEntry{table: table, fetchedAt: s.now()}
	s.mu.Unlock()
	return table
}

// compute queries both sources concurrently, waits for both to settle and
// merges whatever succeeded. A failed source only zeroes its own entries.
func (s *RateServiceImpl) compute(ctx context.Context) models.RateTable {
	var (
		wg         sync.WaitGroup
		tickers    map[string]decimal.Decimal
		tickersErr error
		fx         map[string]decimal.Decimal
		fxErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tickers, tickersErr = s.crypto.TickerPrices(ctx)
	}()
	go func() {
		defer wg.Done()
		fx, fxErr = s.forex.LatestRates(ctx)
	}()
	wg.Wait()

	table := models.NewRateTable()

	if tickersErr != nil {
		s.logger.Warn("crypto ticker source unavailable", zap.Error(tickersErr))
	} else {
		s.applyCrypto(table, tickers)
	}

	if fxErr != nil {
		s.logger.Warn("forex source unavailable", zap.Error(fxErr))
	} else {
		s.applyForex(table, fx)
	}

	return table
}

// applyCrypto fills the crypto-derived entries. Every asset is quoted
// against USDT on the exchange, so each valuation is a two-hop
// conversion: asset -> USDT -> TRY. Missing pairs resolve to zero.
func (s *RateServiceImpl) applyCrypto(table models.RateTable, tickers map[string]decimal.Decimal) {
	usdtTRY := tickers["USDTTRY"]

	table[models.SymbolUSDT] = usdtTRY
	table[models.SymbolBTC] = tickers["BTCUSDT"].Mul(usdtTRY)
	table[models.SymbolETH] = tickers["ETHUSDT"].Mul(usdtTRY)
	table[models.SymbolSOL] = tickers["SOLUSDT"].Mul(usdtTRY)
	table[models.SymbolAVAX] = tickers["AVAXUSDT"].Mul(usdtTRY)

	// Gold via the tokenized-gold pair: PAXG tracks one troy ounce.
	ounce := tickers["PAXGUSDT"].Mul(usdtTRY)
	table[models.SymbolXAU] = ounce
	table[models.SymbolGA] = ounce.Div(models.GramsPerTroyOunce)
}

// applyForex fills the fiat entries and the inverse-quoted metals. The
// source reports ounces of metal per USD, so metal prices are inverted
// before converting to TRY. Gold is only taken from here when the
// crypto-derived value is unavailable (fallback chain, not duplication).
func (s *RateServiceImpl) applyForex(table models.RateTable, fx map[string]decimal.Decimal) {
	try := fx["TRY"]
	table[models.SymbolUSD] = try

	if eur := fx["EUR"]; !eur.IsZero() {
		table[models.SymbolEUR] = try.Div(eur)
	}

	if xag := fx["XAG"]; !xag.IsZero() {
		table[models.SymbolGAG] = try.Div(xag).Div(models.GramsPerTroyOunce)
	}

	if table[models.SymbolXAU].IsZero() {
		if xau := fx["XAU"]; !xau.IsZero() {
			ounce := try.Div(xau)
			table[models.SymbolXAU] = ounce
			table[models.SymbolGA] = ounce.Div(models.GramsPerTroyOunce)
		}
	}
}

var _ RateService = (*RateServiceImpl)(nil)
