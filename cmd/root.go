// Package cmd implements the cardvice command line.
package cmd

import (
	"github.com/grovetools/cardvice/cli"
	"github.com/grovetools/cardvice/pkg/profiling"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the cardvice command tree. Without a subcommand the card
// player starts.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"cardvice",
		"Shuffle through advice cards in your terminal",
	)
	rootCmd.Long = `Shows short pieces of advice one card at a time. Every card of the active
category filter is shown once before any card repeats.

Examples:
  # Start the card player
  cardvice

  # Only health advice, with a custom catalog
  cardvice play --category health --catalog ~/advice.yml

  # Print five cards without the TUI
  cardvice draw -n 5`

	rootCmd.PersistentFlags().String("catalog", "", "Path to an advice catalog (YAML, TOML or JSON)")
	profiling.NewCobraProfiler().AddFlags(rootCmd)

	play := NewPlayCmd()
	rootCmd.Flags().AddFlagSet(play.Flags())
	rootCmd.RunE = play.RunE

	rootCmd.AddCommand(play)
	rootCmd.AddCommand(NewDrawCmd())
	rootCmd.AddCommand(NewCategoriesCmd())
	rootCmd.AddCommand(NewCatalogCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewPathsCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("cardvice"))

	cli.ApplyStyledHelpRecursive(rootCmd)
	return rootCmd
}
