package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grovetools/cardvice/config"
	"github.com/grovetools/cardvice/logging"
	"github.com/spf13/cobra"
)

// PathsOutput lists the files and directories cardvice reads and writes.
type PathsOutput struct {
	GlobalConfig  string `json:"global_config"`
	ProjectConfig string `json:"project_config,omitempty"`
	LogDir        string `json:"log_dir"`
}

func NewPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the configuration and log paths used by cardvice",
		Long: `Print the configuration and log paths used by cardvice as JSON.

- global_config: the user-wide cardvice.yml
- project_config: the cardvice.yml found from the current directory, if any
- log_dir: where component logs are written while the card player runs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := PathsOutput{
				GlobalConfig: config.GlobalConfigPath(),
				LogDir:       logging.LogDir(),
			}
			if cwd, err := os.Getwd(); err == nil {
				if path, err := config.FindConfigFile(cwd); err == nil {
					output.ProjectConfig = path
				}
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	return cmd
}
