package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
	"github.com/grovetools/tend/pkg/tui"
)

// PlayTUIScenario drives the card player: advancing, filtering and a hot
// reload of the catalog file.
func PlayTUIScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "cardvice-play-tui",
		Description: "Starts the card player, filters by category and reloads the catalog.",
		Tags:        []string{"tui", "interactive"},
		LocalOnly:   true, // TUI tests require tmux
		Steps: []harness.Step{
			harness.NewStep("Setup catalog and config", func(ctx *harness.Context) error {
				// StartTUI runs in ctx.RootDir.
				if err := fs.WriteString(filepath.Join(ctx.RootDir, "advice.yml"), testCatalog); err != nil {
					return err
				}
				cfg := "catalog: advice.yml\nanimation:\n  leave: 50ms\n  enter: 50ms\n"
				return fs.WriteString(filepath.Join(ctx.RootDir, "cardvice.yml"), cfg)
			}),
			harness.NewStep("Launch the card player", func(ctx *harness.Context) error {
				bin, err := findCardviceBinary()
				if err != nil {
					return err
				}
				session, err := ctx.StartTUI(bin, []string{"play"})
				if err != nil {
					return fmt.Errorf("failed to start TUI: %w", err)
				}
				ctx.Set("tui_session", session)

				if err := session.WaitForText("Categories", 10*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("TUI did not load within timeout: %w\nContent: %s", err, content)
				}
				return session.AssertContains("left in cycle")
			}),
			harness.NewStep("Filter to the Money category", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				if err := session.SendKeys("1"); err != nil {
					return err
				}
				if err := session.WaitForText("Check your subscriptions.", 3*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("filtered card not shown: %w\nContent: %s", err, content)
				}
				return session.AssertContains("Money")
			}),
			harness.NewStep("Switch to the empty Work category", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				if err := session.SendKeys("5"); err != nil {
					return err
				}
				if err := session.WaitForText("No advice available", 3*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("sentinel card not shown: %w\nContent: %s", err, content)
				}
				return nil
			}),
			harness.NewStep("Reload the catalog", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				updated := testCatalog + "  Friends:\n    - Call an old friend.\n"
				updated = replaceWork(updated)
				if err := fs.WriteString(filepath.Join(ctx.RootDir, "advice.yml"), updated); err != nil {
					return err
				}
				if err := session.WaitForText("catalog reloaded", 5*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("reload notice not shown: %w\nContent: %s", err, content)
				}
				if err := session.WaitForText("Reply to the email", 3*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("reloaded card not shown: %w\nContent: %s", err, content)
				}
				return nil
			}),
			harness.NewStep("Quit", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				return session.SendKeys("q")
			}),
		},
	}
}

// replaceWork fills the empty Work category so a reload has something to show.
func replaceWork(catalog string) string {
	return strings.Replace(catalog, "  Work: []\n", "  Work:\n    - Reply to the email you have been avoiding.\n", 1)
}
