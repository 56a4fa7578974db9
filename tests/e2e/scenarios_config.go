package main

import (
	"fmt"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// ConfigLayeringScenario verifies that the project config overrides the
// global config per key.
func ConfigLayeringScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "cardvice-config-layering",
		Description: "Verifies that global and project configs are merged correctly.",
		Tags:        []string{"config"},
		Steps: []harness.Step{
			harness.NewStep("Setup layered configuration and verify merge", func(ctx *harness.Context) error {
				globalDir := filepath.Join(ctx.ConfigDir(), "cardvice")
				if err := fs.CreateDir(globalDir); err != nil {
					return fmt.Errorf("failed to create global config dir: %w", err)
				}
				globalYAML := `theme: gruvbox
filter:
  mode: multi
keys:
  next: ["j"]
logging:
  level: warn
`
				if err := fs.WriteString(filepath.Join(globalDir, "cardvice.yml"), globalYAML); err != nil {
					return err
				}

				projectDir, err := writeProject(ctx, "layering", "filter:\n  mode: single\nkeys:\n  toggle_money: [\"m\"]\n")
				if err != nil {
					return err
				}

				bin, err := findCardviceBinary()
				if err != nil {
					return err
				}
				cmd := ctx.Command(bin, "config").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if result.Error != nil {
					return fmt.Errorf("`cardvice config` failed: %w", result.Error)
				}

				output := result.Stdout
				checks := []struct{ want, msg string }{
					{"GLOBAL CONFIG", "global layer should be shown"},
					{"PROJECT CONFIG", "project layer should be shown"},
					{"FINAL MERGED CONFIG", "final config block should exist"},
					{"theme: gruvbox", "global theme should be kept"},
					{"mode: single", "project filter mode should win"},
					{"toggle_money:", "project key overrides should be present"},
					{"next:", "global key overrides should be merged"},
					{"logging:", "extensions should be kept"},
				}
				for _, c := range checks {
					if err := assert.Contains(output, c.want, c.msg); err != nil {
						return err
					}
				}
				return nil
			}),
		},
	}
}

// ConfigInvalidModeScenario checks the error reported for a bad filter mode.
func ConfigInvalidModeScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "cardvice-config-invalid-mode",
		Tags: []string{"config"},
		Steps: []harness.Step{
			harness.NewStep("Run draw with an invalid filter mode", func(ctx *harness.Context) error {
				projectDir, err := writeProject(ctx, "invalid-mode", "filter:\n  mode: sometimes\n")
				if err != nil {
					return err
				}
				bin, err := findCardviceBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "draw").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(1, result.ExitCode, "draw should fail"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "Invalid configuration", "error should name the configuration")
			}),
		},
	}
}
