// Package cli implements the folio command line client: the local-first
// portfolio store, the vocabulary progress store and the quiz run against
// the folio server API.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/odemir/folio/internal/client"
	"github.com/odemir/folio/internal/localstore"
	"github.com/odemir/folio/internal/logger"
)

// Commands lists every CLI command for registration in main.
var Commands = []subcommands.Command{
	&ratesCmd{},
	&portfolioCmd{},
	&newPortfolioCmd{},
	&renamePortfolioCmd{},
	&deletePortfolioCmd{},
	&selectPortfolioCmd{},
	&addAssetCmd{},
	&rmAssetCmd{},
	&exportCmd{},
	&importCmd{},
	&quizCmd{},
	&progressCmd{},
	&dailyCmd{},
}

// env bundles what every command needs: local storage, the API client
// and a logger.
type env struct {
	local  *localstore.Store
	api    *client.Client
	logger *zap.Logger
}

func newEnv() (*env, error) {
	dir := os.Getenv("FOLIO_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".folio")
	}

	local, err := localstore.Open(dir)
	if err != nil {
		return nil, err
	}

	log, err := logger.New()
	if err != nil {
		return nil, err
	}

	return &env{
		local:  local,
		api:    client.New(os.Getenv("FOLIO_SERVER")),
		logger: log,
	}, nil
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
