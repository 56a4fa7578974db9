package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/cardvice/cli"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/pkg/pool"
	"github.com/grovetools/cardvice/pkg/profiling"
	"github.com/grovetools/cardvice/tui/theme"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DrawnCard is one line of `draw --json` output.
type DrawnCard struct {
	N         int    `json:"n"`
	Category  string `json:"category"`
	Text      string `json:"text"`
	Remaining int    `json:"remaining"`
	// CycleEnd is set on the last card of a cycle through the scope.
	CycleEnd bool `json:"cycle_end,omitempty"`
}

// NewDrawCmd creates the `draw` command.
func NewDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Print cards without the interactive player",
		Long: `Draws cards from a single shuffled pool and prints them. Every card of the
scope is printed once before the pool is reshuffled, and a reshuffle never
starts with the card that ended the previous cycle (unless the scope holds a
single card).

Examples:
  # One card
  cardvice draw

  # A full cycle through work advice, as JSON lines
  cardvice draw -t work -n 5 --json

  # Reproducible order
  cardvice draw -n 20 --seed 42`,
		Args: cobra.NoArgs,
		RunE: runDrawE,
	}

	cmd.Flags().IntP("count", "n", 1, "Number of cards to draw")
	cmd.Flags().StringSliceP("category", "t", nil, "Limit to categories (repeatable)")
	cmd.Flags().String("mode", "", "Filter mode: single or multi (default from config)")
	cmd.Flags().Uint64("seed", 0, "Seed the shuffle for a reproducible order")

	return cmd
}

func runDrawE(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)

	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

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

	poolOpts := []pool.Option{pool.WithLogger(cli.GetLogger(cmd, "pool"))}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		poolOpts = append(poolOpts, pool.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	engine := pool.New(s.catalog, poolOpts...)

	defer profiling.Start("draw").Stop()

	out := cmd.OutOrStdout()
	w := newCardWriter(out, opts.JSONOutput)
	size := engine.Size(scope)
	for i := 1; i <= count; i++ {
		item := engine.Draw(scope)
		remaining := engine.Remaining(scope)
		card := DrawnCard{
			N:         i,
			Category:  string(item.Category),
			Text:      item.Text,
			Remaining: remaining,
			CycleEnd:  size > 1 && remaining == 0,
		}
		if err := w.write(card); err != nil {
			return err
		}
	}
	return nil
}

// cardWriter prints drawn cards as JSON lines, styled text on a terminal, or
// plain tab separated text otherwise.
type cardWriter struct {
	out    io.Writer
	json   *json.Encoder
	styled bool
	width  int
	theme  *theme.Theme
}

func newCardWriter(out io.Writer, jsonOutput bool) *cardWriter {
	w := &cardWriter{out: out, theme: theme.DefaultTheme}
	if jsonOutput {
		w.json = json.NewEncoder(out)
		return w
	}
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w.styled = true
		w.width = 80
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 20 {
			w.width = width
		}
	}
	return w
}

func (w *cardWriter) write(card DrawnCard) error {
	if w.json != nil {
		return w.json.Encode(card)
	}

	if !w.styled {
		_, err := fmt.Fprintf(w.out, "%s\t%s\n", card.Category, card.Text)
		return err
	}

	label := card.Category
	color := w.theme.Colors.MutedText
	if c, err := advice.ParseCategory(card.Category); err == nil {
		label = c.Icon() + " " + card.Category
		color = w.theme.CategoryColor(c)
	}
	header := lipgloss.NewStyle().Foreground(color).Bold(true).Render(label)
	text := lipgloss.NewStyle().Width(w.width - 4).PaddingLeft(2).Render(card.Text)

	if _, err := fmt.Fprintf(w.out, "%s\n%s\n", header, text); err != nil {
		return err
	}
	if card.CycleEnd {
		_, err := fmt.Fprintln(w.out, w.theme.Muted.Render(fmt.Sprintf("%s cycle complete, reshuffling", theme.IconReloading)))
		return err
	}
	return nil
}
