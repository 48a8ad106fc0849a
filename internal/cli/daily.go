package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "show the word of the day" }
func (*dailyCmd) Usage() string {
	return `daily
`
}
func (*dailyCmd) SetFlags(*flag.FlagSet) {}

func (c *dailyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		return fail(err)
	}

	word, err := e.api.WordOfTheDay(ctx)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%s (%s)\n  %s\n", word.Term, word.Level, word.Meaning)
	if word.Example != nil && *word.Example != "" {
		fmt.Printf("  e.g. %s\n", *word.Example)
	}
	return subcommands.ExitSuccess
}
