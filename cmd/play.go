package cmd

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/cardvice/cli"
	"github.com/grovetools/cardvice/logging"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/pkg/catalog"
	"github.com/grovetools/cardvice/pkg/deck"
	"github.com/grovetools/cardvice/pkg/pool"
	"github.com/grovetools/cardvice/tui"
	"github.com/grovetools/cardvice/tui/cardview"
	"github.com/grovetools/cardvice/tui/theme"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewPlayCmd creates the `play` command.
func NewPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start the interactive card player",
		Long: `Opens the full-screen card player. Press space, enter or click the card for
a new one, 1-0 to filter by category, a to show all categories and ? for help.

When the catalog comes from a file it is reloaded whenever the file changes,
unless watch is disabled in cardvice.yml or --no-watch is given.

Examples:
  cardvice play
  cardvice play --mode multi --category money --category work
  cardvice play --catalog ./team-advice.toml --no-watch`,
		Args: cobra.NoArgs,
		RunE: runPlayE,
	}

	cmd.Flags().StringSliceP("category", "t", nil, "Initial category filter (repeatable)")
	cmd.Flags().String("mode", "", "Filter mode: single or multi (default from config)")
	cmd.Flags().Bool("no-watch", false, "Do not reload the catalog when its file changes")

	return cmd
}

func runPlayE(cmd *cobra.Command, args []string) error {
	logger := cli.GetLogger(cmd, "play")

	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	mode, err := modeFromFlag(cmd, s.cfg)
	if err != nil {
		return err
	}
	names, _ := cmd.Flags().GetStringSlice("category")
	scope, err := scopeFromFlags(names, mode, s.cfg.InitialScope())
	if err != nil {
		return err
	}

	if s.cfg.Theme != "" && !theme.Known(s.cfg.Theme) {
		logger.WithFields(logrus.Fields{
			"theme":     s.cfg.Theme,
			"available": theme.Names(),
		}).Warn("Unknown theme, using the default")
	}
	if unknown := cardview.UnknownKeyActions(s.cfg.Keys); len(unknown) > 0 {
		logger.WithField("actions", unknown).Warn("Ignoring key overrides for unknown actions")
	}

	engine := pool.New(s.catalog, pool.WithLogger(cli.GetLogger(cmd, "pool")))
	d := deck.New(engine, deck.Options{
		Mode:   mode,
		Scope:  scope,
		Logger: cli.GetLogger(cmd, "deck"),
	})
	model := cardview.New(d, cardview.Options{
		Leave:  s.cfg.Animation.Leave.Std(),
		Enter:  s.cfg.Animation.Enter.Std(),
		Keys:   cardview.NewKeyMap(s.cfg.Keys),
		Source: s.source,
	})

	logger.WithFields(logrus.Fields{
		"catalog": s.source,
		"mode":    mode,
		"scope":   scope.Key(),
	}).Info("Starting card player")

	tui.InitializeTUI()

	// The card view owns the terminal; logs still reach the file sink.
	defer logging.RedirectGlobalOutput(io.Discard)()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if s.source != catalog.EmbeddedSource && s.cfg.WatchEnabled() && !noWatch {
		w, err := catalog.NewWatcher(s.source, catalog.DefaultDebounce, cli.GetLogger(cmd, "watcher"),
			func(c advice.Catalog) {
				p.Send(cardview.CatalogReloadedMsg{Catalog: c})
			})
		if err != nil {
			logger.WithError(err).Warn("Catalog hot reload disabled")
		} else {
			go w.Start(ctx)
		}
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	logger.WithField("requests", d.Requests()).Info("Card player closed")
	return nil
}
