package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/odemir/folio/internal/vocab"
)

type progressCmd struct {
	word   string
	status string
}

func (*progressCmd) Name() string     { return "progress" }
func (*progressCmd) Synopsis() string { return "show or update word learning progress" }
func (*progressCmd) Usage() string {
	return `progress [-word <id> -status known|learning|target]

  Without flags, lists every locally tracked word status. With -word and
  -status, records the status locally and mirrors it to the server in
  the background.
`
}
func (c *progressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.word, "word", "", "word id to update")
	f.StringVar(&c.status, "status", "", "known, learning or target")
}

func (c *progressCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		return fail(err)
	}
	store, err := vocab.OpenProgress(e.local, e.api, e.logger)
	if err != nil {
		return fail(err)
	}

	if c.word == "" && c.status == "" {
		for _, entry := range store.Entries() {
			fmt.Printf("%-10s %s\n", entry.Status, entry.WordID)
		}
		return subcommands.ExitSuccess
	}
	if c.word == "" || c.status == "" {
		return fail(fmt.Errorf("-word and -status must be given together"))
	}

	if err := store.SetStatus(c.word, c.status); err != nil {
		return fail(err)
	}
	// let the background sync settle before the process exits
	store.Wait()
	return subcommands.ExitSuccess
}
