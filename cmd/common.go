package cmd

import (
	"fmt"

	"github.com/grovetools/cardvice/cli"
	"github.com/grovetools/cardvice/config"
	"github.com/grovetools/cardvice/errors"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/pkg/catalog"
	"github.com/grovetools/cardvice/pkg/profiling"
	"github.com/spf13/cobra"
)

// session is the configuration and content shared by the commands that
// draw cards.
type session struct {
	cfg     *config.Config
	catalog advice.Catalog
	// source is the resolved catalog path, or catalog.EmbeddedSource.
	source string
}

// loadSession loads the configuration and resolves the catalog. The
// --catalog flag takes precedence over the configured path.
func loadSession(cmd *cobra.Command) (*session, error) {
	defer profiling.Start("load session").Stop()

	span := profiling.Start("config")
	cfg, err := cli.LoadConfig(cmd)
	span.Stop()
	if err != nil {
		return nil, err
	}

	path := cfg.Catalog
	if f := cmd.Flags().Lookup("catalog"); f != nil && f.Changed {
		path = f.Value.String()
	}

	span = profiling.Start("catalog")
	c, source, err := catalog.Resolve(path)
	span.Stop()
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, catalog: c, source: source}, nil
}

// scopeFromFlags parses --category values into a scope. Without values the
// configured initial scope is used.
func scopeFromFlags(names []string, mode advice.FilterMode, fallback advice.Scope) (advice.Scope, error) {
	if len(names) == 0 {
		return fallback, nil
	}
	cats := make([]advice.Category, 0, len(names))
	for _, name := range names {
		c, err := advice.ParseCategory(name)
		if err != nil {
			return advice.Scope{}, err
		}
		cats = append(cats, c)
	}
	if mode == advice.FilterSingle && len(cats) > 1 {
		return advice.Scope{}, errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("single filter mode accepts one category, got %d (use --mode multi)", len(cats)))
	}
	return advice.ScopeOf(cats...), nil
}

// modeFromFlag returns the filter mode named by --mode, or the configured one.
func modeFromFlag(cmd *cobra.Command, cfg *config.Config) (advice.FilterMode, error) {
	f := cmd.Flags().Lookup("mode")
	if f == nil || !f.Changed {
		return cfg.FilterMode(), nil
	}
	return advice.ParseFilterMode(f.Value.String())
}
