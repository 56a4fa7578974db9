package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/cardvice/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the `config` command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the layered configuration for the current directory",
		Long: `Shows how the final configuration is built by merging layers:
1. Built-in defaults
2. Global config ($XDG_CONFIG_HOME/cardvice/cardvice.yml)
3. Project config (cardvice.yml found from the current directory upwards)
This is useful for debugging configuration issues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}

			layered, err := config.LoadLayered(cwd)
			if err != nil {
				return err
			}

			finalOnly, _ := cmd.Flags().GetBool("final")
			out := cmd.OutOrStdout()
			if !finalOnly {
				printLayer(out, "GLOBAL CONFIG", layered.FilePaths[config.SourceGlobal], layered.Global)
				printLayer(out, "PROJECT CONFIG", layered.FilePaths[config.SourceProject], layered.Project)
			}
			printLayer(out, "FINAL MERGED CONFIG", "", layered.Final)
			return nil
		},
	}
	cmd.Flags().Bool("final", false, "Only print the merged configuration")
	return cmd
}

func printLayer(w io.Writer, title string, path string, cfg *config.Config) {
	if cfg == nil {
		return
	}
	fmt.Fprintf(w, "--- # %s\n", title)
	if path != "" {
		fmt.Fprintf(w, "# Source: %s\n", path)
	}
	data, _ := yaml.Marshal(cfg)
	fmt.Fprintln(w, string(data))
}
