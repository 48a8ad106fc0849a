package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/odemir/folio/internal/models"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show current exchange rates in TRY" }
func (*ratesCmd) Usage() string {
	return `rates

  Fetches the aggregated rate table from the server and prints the TRY
  price for every tracked symbol. Entries the server could not obtain
  show as zero.
`
}
func (*ratesCmd) SetFlags(*flag.FlagSet) {}

func (c *ratesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		return fail(err)
	}

	table, err := e.api.Rates(ctx)
	if err != nil {
		return fail(err)
	}

	for _, symbol := range models.RateSymbols {
		fmt.Printf("%-6s %s\n", symbol, table.Price(symbol).StringFixed(4))
	}
	return subcommands.ExitSuccess
}
