// Package portfolio implements the local-first portfolio store: named
// portfolios and their asset lists live entirely on this machine and are
// valued against the server's rate table.
package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/odemir/folio/internal/localstore"
	"github.com/odemir/folio/internal/models"
)

// Local storage keys. keyLegacyAssets is the pre-multi-portfolio layout,
// folded into the new layout once at load time.
const (
	keyPortfolios   = "portfolios"
	keyCurrent      = "current_portfolio"
	keyCurrency     = "display_currency"
	keyLegacyAssets = "assets"
)

const defaultCurrency = "TRY"

// ErrLastPortfolio is returned when deleting would leave no portfolios.
var ErrLastPortfolio = errors.New("at least one portfolio must exist")

// RateFetcher provides the current rate table.
type RateFetcher interface {
	Rates(ctx context.Context) (models.RateTable, error)
}

// Store holds the user's portfolios, the active portfolio pointer, the
// display currency and the last fetched rate table. Every mutation is
// written back to local storage before it returns.
type Store struct {
	local  *localstore.Store
	rates  RateFetcher
	logger *zap.Logger

	mu         sync.Mutex
	portfolios []models.Portfolio
	currentID  string
	currency   string
	table      models.RateTable

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Open loads the store from local storage, running the legacy single-list
// migration first if needed, and guarantees at least one portfolio exists.
func Open(local *localstore.Store, rates RateFetcher, logger *zap.Logger) (*Store, error) {
	s := &Store{
		local:  local,
		rates:  rates,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	if err := s.migrateLegacy(); err != nil {
		return nil, err
	}

	if _, err := local.Get(keyPortfolios, &s.portfolios); err != nil {
		return nil, err
	}
	if _, err := local.Get(keyCurrent, &s.currentID); err != nil {
		return nil, err
	}
	if found, err := local.Get(keyCurrency, &s.currency); err != nil {
		return nil, err
	} else if !found {
		s.currency = defaultCurrency
	}

	if len(s.portfolios) == 0 {
		s.portfolios = []models.Portfolio{{
			ID:     uuid.NewString(),
			Name:   "Main",
			Assets: []models.Asset{},
		}}
		s.currentID = s.portfolios[0].ID
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	if s.findPortfolio(s.currentID) == nil {
		s.currentID = s.portfolios[0].ID
	}

	return s, nil
}

// migrateLegacy folds the old single-list "assets" key into the
// multi-portfolio layout. One-shot: once the new key exists the old one
// is ignored, and the old key is removed after a successful migration.
func (s *Store) migrateLegacy() error {
	if s.local.Has(keyPortfolios) || !s.local.Has(keyLegacyAssets) {
		return nil
	}

	var assets []models.Asset
	if _, err := s.local.Get(keyLegacyAssets, &assets); err != nil {
		return fmt.Errorf("failed to read legacy assets: %w", err)
	}

	migrated := models.Portfolio{
		ID:     uuid.NewString(),
		Name:   "Main",
		Assets: assets,
	}
	if err := s.local.Put(keyPortfolios, []models.Portfolio{migrated}); err != nil {
		return err
	}
	if err := s.local.Put(keyCurrent, migrated.ID); err != nil {
		return err
	}
	return s.local.Delete(keyLegacyAssets)
}

// persist writes the whole state back to local storage. Callers hold s.mu.
func (s *Store) persist() error {
	if err := s.local.Put(keyPortfolios, s.portfolios); err != nil {
		return err
	}
	if err := s.local.Put(keyCurrent, s.currentID); err != nil {
		return err
	}
	return s.local.Put(keyCurrency, s.currency)
}

func (s *Store) findPortfolio(id string) *models.Portfolio {
	for i := range s.portfolios {
		if s.portfolios[i].ID == id {
			return &s.portfolios[i]
		}
	}
	return nil
}

// Portfolios returns a copy of all portfolios.
func (s *Store) Portfolios() []models.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Portfolio, len(s.portfolios))
	copy(out, s.portfolios)
	return out
}

// Current returns a copy of the active portfolio.
func (s *Store) Current() models.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.findPortfolio(s.currentID)
}

// Currency returns the display currency.
func (s *Store) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// SetCurrency changes the display currency.
func (s *Store) SetCurrency(code string) error {
	if code == "" {
		return errors.New("currency code is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = code
	return s.persist()
}

// CreatePortfolio adds a new empty portfolio and makes it active.
func (s *Store) CreatePortfolio(name string) (models.Portfolio, error) {
	if name == "" {
		return models.Portfolio{}, errors.New("portfolio name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Portfolio{
		ID:     uuid.NewString(),
		Name:   name,
		Assets: []models.Asset{},
	}
	s.portfolios = append(s.portfolios, p)
	s.currentID = p.ID
	if err := s.persist(); err != nil {
		return models.Portfolio{}, err
	}
	return p, nil
}

// RenamePortfolio renames a portfolio by id.
func (s *Store) RenamePortfolio(id, name string) error {
	if name == "" {
		return errors.New("portfolio name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPortfolio(id)
	if p == nil {
		return fmt.Errorf("portfolio not found: %s", id)
	}
	p.Name = name
	return s.persist()
}

// DeletePortfolio removes a portfolio. Deleting the last remaining
// portfolio is refused; deleting the active one moves the pointer to the
// first survivor.
func (s *Store) DeletePortfolio(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.portfolios) <= 1 {
		return ErrLastPortfolio
	}
	idx := -1
	for i := range s.portfolios {
		if s.portfolios[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("portfolio not found: %s", id)
	}

	s.portfolios = append(s.portfolios[:idx], s.portfolios[idx+1:]...)
	if s.currentID == id {
		s.currentID = s.portfolios[0].ID
	}
	return s.persist()
}

// SelectPortfolio changes the active portfolio.
func (s *Store) SelectPortfolio(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findPortfolio(id) == nil {
		return fmt.Errorf("portfolio not found: %s", id)
	}
	s.currentID = id
	return s.persist()
}

// AddAsset adds an asset to the active portfolio.
func (s *Store) AddAsset(symbol string, amount, cost decimal.Decimal, category string) (models.Asset, error) {
	asset := models.Asset{
		ID:       uuid.NewString(),
		Symbol:   symbol,
		Amount:   amount,
		Cost:     cost,
		Category: category,
	}
	if err := asset.Validate(); err != nil {
		return models.Asset{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPortfolio(s.currentID)
	p.Assets = append(p.Assets, asset)
	if err := s.persist(); err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

// UpdateAsset updates an asset in the active portfolio.
func (s *Store) UpdateAsset(id string, amount, cost decimal.Decimal, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPortfolio(s.currentID)
	for i := range p.Assets {
		if p.Assets[i].ID == id {
			updated := p.Assets[i]
			updated.Amount = amount
			updated.Cost = cost
			updated.Category = category
			if err := updated.Validate(); err != nil {
				return err
			}
			p.Assets[i] = updated
			return s.persist()
		}
	}
	return fmt.Errorf("asset not found: %s", id)
}

// RemoveAsset removes an asset from the active portfolio.
func (s *Store) RemoveAsset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPortfolio(s.currentID)
	for i := range p.Assets {
		if p.Assets[i].ID == id {
			p.Assets = append(p.Assets[:i], p.Assets[i+1:]...)
			return s.persist()
		}
	}
	return fmt.Errorf("asset not found: %s", id)
}

// Valuation derives current value, cost value and profit/loss for one
// asset against the last fetched rate table. A symbol missing from the
// table values at zero; a zero cost basis yields a zero percentage
// instead of a division by zero.
func (s *Store) Valuation(a models.Asset) models.AssetValuation {
	s.mu.Lock()
	rate := s.table.Price(a.Symbol)
	s.mu.Unlock()

	current := a.Amount.Mul(rate)
	cost := a.Amount.Mul(a.Cost)
	pl := current.Sub(cost)

	pct := decimal.Zero
	if !cost.IsZero() {
		pct = pl.Div(cost).Mul(decimal.NewFromInt(100))
	}

	return models.AssetValuation{
		CurrentValue:  current,
		CostValue:     cost,
		ProfitLoss:    pl,
		ProfitLossPct: pct,
	}
}

// TotalValuation sums valuations across the active portfolio.
func (s *Store) TotalValuation() models.AssetValuation {
	current := decimal.Zero
	cost := decimal.Zero
	for _, a := range s.Current().Assets {
		v := s.Valuation(a)
		current = current.Add(v.CurrentValue)
		cost = cost.Add(v.CostValue)
	}

	pl := current.Sub(cost)
	pct := decimal.Zero
	if !cost.IsZero() {
		pct = pl.Div(cost).Mul(decimal.NewFromInt(100))
	}
	return models.AssetValuation{
		CurrentValue:  current,
		CostValue:     cost,
		ProfitLoss:    pl,
		ProfitLossPct: pct,
	}
}

// FormatMoney renders an amount in the store's display currency.
func (s *Store) FormatMoney(v decimal.Decimal) string {
	code := s.Currency()
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(defaultCurrency)
	}
	minor := v.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// Refresh fetches the rate table once. A failed fetch keeps the previous
// table in place.
func (s *Store) Refresh(ctx context.Context) error {
	table, err := s.rates.Rates(ctx)
	if err != nil {
		s.logger.Warn("rate refresh failed, keeping previous table", zap.Error(err))
		return err
	}
	s.mu.Lock()
	s.table = table
	s.mu.Unlock()
	return nil
}

// RateTable returns the last fetched rate table (nil before any refresh).
func (s *Store) RateTable() models.RateTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// StartRefresh fetches rates immediately and then on every interval tick
// until Close is called or ctx is cancelled.
func (s *Store) StartRefresh(ctx context.Context, interval time.Duration) {
	go func() {
		defer close(s.done)
		_ = s.Refresh(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = s.Refresh(ctx)
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the refresh loop.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Export writes the backup snapshot to w.
func (s *Store) Export(w io.Writer) error {
	s.mu.Lock()
	backup := models.PortfolioBackup{
		Version:    models.BackupVersion,
		Timestamp:  time.Now().UTC(),
		Currency:   s.currency,
		Portfolios: s.portfolios,
	}
	s.mu.Unlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("failed to export portfolios: %w", err)
	}
	return nil
}

// Import replaces the store state with the snapshot read from r. The
// snapshot must carry a portfolios list; on any parse or validation
// failure the store is left unchanged.
func (s *Store) Import(r io.Reader) error {
	var raw struct {
		Version    int                 `json:"version"`
		Currency   string              `json:"currency"`
		Portfolios *[]models.Portfolio `json:"portfolios"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}
	if raw.Portfolios == nil {
		return errors.New("invalid backup file: missing portfolios list")
	}
	if len(*raw.Portfolios) == 0 {
		return errors.New("invalid backup file: portfolios list is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.portfolios = *raw.Portfolios
	s.currentID = s.portfolios[0].ID
	if raw.Currency != "" {
		s.currency = raw.Currency
	}
	return s.persist()
}
