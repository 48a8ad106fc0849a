package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/odemir/folio/internal/portfolio"
)

// openStore builds the portfolio store over the shared local storage and
// the API client, and fetches rates once so valuations are meaningful.
func openStore(ctx context.Context, e *env) (*portfolio.Store, error) {
	store, err := portfolio.Open(e.local, e.api, e.logger)
	if err != nil {
		return nil, err
	}
	// A failed refresh keeps valuations at zero, the listing still works.
	_ = store.Refresh(ctx)
	return store, nil
}

type portfolioCmd struct {
	watch bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "show portfolios and the active one's valuation" }
func (*portfolioCmd) Usage() string {
	return `portfolio [-watch]

  Lists all portfolios and prints every asset of the active portfolio
  with its current value, cost and profit/loss.
`
}
func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.watch, "watch", false, "keep refreshing rates every minute and reprint")
}

func (c *portfolioCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		return fail(err)
	}
	store, err := openStore(ctx, e)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if !c.watch {
		printPortfolios(store)
		return subcommands.ExitSuccess
	}

	store.StartRefresh(ctx, time.Minute)
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		printPortfolios(store)
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return subcommands.ExitSuccess
		}
	}
}

func printPortfolios(store *portfolio.Store) {
	current := store.Current()
	for _, p := range store.Portfolios() {
		marker := " "
		if p.ID == current.ID {
			marker = "*"
		}
		fmt.Printf("%s %s  %s  (%d assets)\n", marker, p.ID, p.Name, len(p.Assets))
	}

	fmt.Printf("\n%s\n", current.Name)
	for _, a := range current.Assets {
		v := store.Valuation(a)
		fmt.Printf("  %-8s %12s  value %14s  cost %14s  p/l %14s (%s%%)\n",
			a.Symbol,
			a.Amount.String(),
			store.FormatMoney(v.CurrentValue),
			store.FormatMoney(v.CostValue),
			store.FormatMoney(v.ProfitLoss),
			v.ProfitLossPct.StringFixed(2),
		)
	}
	total := store.TotalValuation()
	fmt.Printf("  %-8s %12s  value %14s  cost %14s  p/l %14s (%s%%)\n",
		"TOTAL", "",
		store.FormatMoney(total.CurrentValue),
		store.FormatMoney(total.CostValue),
		store.FormatMoney(total.ProfitLoss),
		total.ProfitLossPct.StringFixed(2),
	)
}

type newPortfolioCmd struct{}

func (*newPortfolioCmd) Name() string     { return "new-portfolio" }
func (*newPortfolioCmd) Synopsis() string { return "create a portfolio and make it active" }
func (*newPortfolioCmd) Usage() string {
	return `new-portfolio <name>

  Creates an empty portfolio with the given name and selects it.
`
}
func (*newPortfolioCmd) SetFlags(*flag.FlagSet) {}

func (c *newPortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	p, err := store.CreatePortfolio(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	fmt.Printf("created portfolio %s (%s)\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}

type renamePortfolioCmd struct{}

func (*renamePortfolioCmd) Name() string     { return "rename-portfolio" }
func (*renamePortfolioCmd) Synopsis() string { return "rename a portfolio" }
func (*renamePortfolioCmd) Usage() string {
	return `rename-portfolio <id> <name>
`
}
func (*renamePortfolioCmd) SetFlags(*flag.FlagSet) {}

func (c *renamePortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
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

	if err := store.RenamePortfolio(f.Arg(0), f.Arg(1)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type deletePortfolioCmd struct{}

func (*deletePortfolioCmd) Name() string     { return "delete-portfolio" }
func (*deletePortfolioCmd) Synopsis() string { return "delete a portfolio" }
func (*deletePortfolioCmd) Usage() string {
	return `delete-portfolio <id>

  Removes the portfolio. The last remaining portfolio cannot be deleted.
`
}
func (*deletePortfolioCmd) SetFlags(*flag.FlagSet) {}

func (c *deletePortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := store.DeletePortfolio(f.Arg(0)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type selectPortfolioCmd struct{}

func (*selectPortfolioCmd) Name() string     { return "select-portfolio" }
func (*selectPortfolioCmd) Synopsis() string { return "make a portfolio the active one" }
func (*selectPortfolioCmd) Usage() string {
	return `select-portfolio <id>
`
}
func (*selectPortfolioCmd) SetFlags(*flag.FlagSet) {}

func (c *selectPortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := store.SelectPortfolio(f.Arg(0)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
