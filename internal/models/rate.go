package models

import (
	"github.com/shopspring/decimal"
)

// Symbols the rate aggregator always reports, all priced in TRY
const (
	SymbolUSDT = "USDT"
	SymbolBTC  = "BTC"
	SymbolETH  = "ETH"
	SymbolSOL  = "SOL"
	SymbolAVAX = "AVAX"
	SymbolUSD  = "USD"
	SymbolEUR  = "EUR"
	SymbolGA   = "GA"  // gram gold
	SymbolGAG  = "GAG" // gram silver
	SymbolXAU  = "XAU" // troy ounce gold
)

// RateSymbols is the fixed key set of every RateTable.
var RateSymbols = []string{
	SymbolUSDT, SymbolBTC, SymbolETH, SymbolSOL, SymbolAVAX,
	SymbolUSD, SymbolEUR, SymbolGA, SymbolGAG, SymbolXAU,
}

// GramsPerTroyOunce converts troy-ounce metal prices to per-gram prices.
var GramsPerTroyOunce = decimal.NewFromFloat(31.1035)

// RateTable maps an asset or currency symbol to its price in TRY.
// A table always carries every symbol in RateSymbols; entries the
// aggregator could not obtain are zero.
type RateTable map[string]decimal.Decimal

// NewRateTable returns a table with every symbol present at zero.
func NewRateTable() RateTable {
	t := make(RateTable, len(RateSymbols))
	for _, s := range RateSymbols {
		t[s] = decimal.Zero
	}
	return t
}

// Price returns the price for a symbol, zero when the symbol is unknown.
func (t RateTable) Price(symbol string) decimal.Decimal {
	return t[symbol]
}
