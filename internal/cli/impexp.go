package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/odemir/folio/internal/portfolio"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a portfolio backup file" }
func (*exportCmd) Usage() string {
	return `export [-o backup.json]

  Writes a versioned snapshot of all portfolios and the display currency.
  Without -o the snapshot goes to stdout.
`
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file (default stdout)")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		return fail(err)
	}
	store, err := portfolio.Open(e.local, e.api, e.logger)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	out := os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer f.Close()
		out = f
	}
	if err := store.Export(out); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore portfolios from a backup file" }
func (*importCmd) Usage() string {
	return `import <backup.json>

  Replaces all portfolios with the snapshot. A file without a portfolios
  list is rejected and the current state is kept.
`
}
func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	in, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	if err := store.Import(in); err != nil {
		return fail(err)
	}
	fmt.Printf("imported %d portfolios\n", len(store.Portfolios()))
	return subcommands.ExitSuccess
}
