package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Asset is one position inside a portfolio. Cost is the per-unit cost
// basis in the display currency.
type Asset struct {
	ID       string          `json:"id"`
	Symbol   string          `json:"symbol"`
	Amount   decimal.Decimal `json:"amount"`
	Cost     decimal.Decimal `json:"cost"`
	Category string          `json:"category"`
}

// Validate validates the asset data
func (a *Asset) Validate() error {
	if a.Symbol == "" {
		return errors.New("symbol is required")
	}
	if a.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	if a.Cost.IsNegative() {
		return errors.New("cost must not be negative")
	}
	return nil
}

// Portfolio is a named list of assets owned by the local user.
type Portfolio struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Assets []Asset `json:"assets"`
}

// AssetValuation holds derived values for one asset against a rate table.
type AssetValuation struct {
	CurrentValue  decimal.Decimal `json:"current_value"`
	CostValue     decimal.Decimal `json:"cost_value"`
	ProfitLoss    decimal.Decimal `json:"profit_loss"`
	ProfitLossPct decimal.Decimal `json:"profit_loss_pct"`
}

// PortfolioBackup is the exported snapshot format. Version is bumped
// when the layout changes; imports only require Portfolios to be present.
type PortfolioBackup struct {
	Version    int         `json:"version"`
	Timestamp  time.Time   `json:"timestamp"`
	Currency   string      `json:"currency"`
	Portfolios []Portfolio `json:"portfolios"`
}

// BackupVersion is the current PortfolioBackup layout version.
const BackupVersion = 2
