package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/odemir/folio/internal/portfolio"
)

type addAssetCmd struct {
	symbol   string
	amount   string
	cost     string
	category string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add an asset to the active portfolio" }
func (*addAssetCmd) Usage() string {
	return `add-asset -symbol BTC -amount 0.5 [-cost 1200000] [-category crypto]

  Adds a holding to the active portfolio. Cost is the per-unit purchase
  price in the display currency; leave it zero if unknown.
`
}
func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "asset symbol, e.g. BTC or GA")
	f.StringVar(&c.amount, "amount", "", "amount held")
	f.StringVar(&c.cost, "cost", "0", "per-unit purchase price")
	f.StringVar(&c.category, "category", "", "free-form grouping label")
}

func (c *addAssetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.amount == "" {
		return fail(fmt.Errorf("-symbol and -amount are required"))
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail(fmt.Errorf("invalid amount %q: %w", c.amount, err))
	}
	cost, err := decimal.NewFromString(c.cost)
	if err != nil {
		return fail(fmt.Errorf("invalid cost %q: %w", c.cost, err))
	}

	e, err := newEnv()
	if err != nil {
		return fail(err)
	}
	store, err := portfolio.Open(e.local, e.api, e.logger)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	asset, err := store.AddAsset(c.symbol, amount, cost, c.category)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("added %s %s (%s)\n", asset.Amount.String(), asset.Symbol, asset.ID)
	return subcommands.ExitSuccess
}

type rmAssetCmd struct{}

func (*rmAssetCmd) Name() string     { return "rm-asset" }
func (*rmAssetCmd) Synopsis() string { return "remove an asset from the active portfolio" }
func (*rmAssetCmd) Usage() string {
	return `rm-asset <asset-id>
`
}
func (*rmAssetCmd) SetFlags(*flag.FlagSet) {}

func (c *rmAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("usage: %s", c.Usage()))
	}
	e, err := newEnv()
	if err != nil {
		return fail(err)
	}
	store, err := portfolio.Open(e.local, e.api, e.logger)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := store.RemoveAsset(f.Arg(0)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
