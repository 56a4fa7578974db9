package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/cardvice/cli"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/tui/cardview"
	"github.com/grovetools/cardvice/tui/theme"
	"github.com/spf13/cobra"
)

// CategoryInfo is one entry of `categories --json` output.
type CategoryInfo struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Count    int    `json:"count"`
}

// NewCategoriesCmd creates the `categories` command.
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the advice categories and how many cards each holds",
		Args:  cobra.NoArgs,
		RunE:  runCategoriesE,
	}
}

func runCategoriesE(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	keys := cardview.NewKeyMap(s.cfg.Keys)
	infos := categoryInfos(s.catalog, keys)

	out := cmd.OutOrStdout()
	if cli.GetOptions(cmd).JSONOutput {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal categories to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	t := theme.DefaultTheme
	table := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Colors.Border)).
		Headers("KEY", "CATEGORY", "CARDS").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == ltable.HeaderRow {
				return style.Foreground(t.Colors.Orange).Bold(true)
			}
			if col == 2 {
				return style.Align(lipgloss.Right)
			}
			return style
		})

	total := 0
	for _, info := range infos {
		c, _ := advice.ParseCategory(info.Category)
		table = table.Row(info.Key, c.Icon()+" "+info.Category, fmt.Sprint(info.Count))
		total += info.Count
	}

	fmt.Fprintln(out, table.String())
	fmt.Fprintln(out, t.Muted.Render(fmt.Sprintf("%d cards from %s", total, s.source)))
	return nil
}

func categoryInfos(c advice.Catalog, keys cardview.KeyMap) []CategoryInfo {
	counts := c.Counts()
	toggles := keys.Toggles()
	infos := make([]CategoryInfo, 0, len(toggles))
	for i, cat := range advice.AllCategories() {
		infos = append(infos, CategoryInfo{
			Category: string(cat),
			Key:      strings.Join(toggles[i].Keys(), "/"),
			Count:    counts[cat],
		})
	}
	return infos
}
