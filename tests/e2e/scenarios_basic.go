package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// VersionScenario tests the 'version' command.
func VersionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "cardvice-version",
		Tags: []string{"cli"},
		Steps: []harness.Step{
			harness.NewStep("Run 'cardvice version'", func(ctx *harness.Context) error {
				bin, err := findCardviceBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "version")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "cardvice version should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "cardvice ", "Output should name the tool"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "Commit:", "Output should contain Commit"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "Build Date:", "Output should contain Build Date")
			}),
		},
	}
}

// CategoriesScenario checks per-category counts for a project catalog.
func CategoriesScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "cardvice-categories",
		Description: "Lists every category with the number of cards in the project catalog.",
		Tags:        []string{"cli", "catalog"},
		Steps: []harness.Step{
			harness.NewStep("Run 'cardvice categories --json'", func(ctx *harness.Context) error {
				projectDir, err := writeProject(ctx, "categories", "")
				if err != nil {
					return err
				}
				bin, err := findCardviceBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "categories", "--json").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if result.Error != nil {
					return fmt.Errorf("`cardvice categories` failed: %w", result.Error)
				}

				var infos []struct {
					Category string `json:"category"`
					Count    int    `json:"count"`
				}
				if err := json.Unmarshal([]byte(result.Stdout), &infos); err != nil {
					return fmt.Errorf("failed to parse categories output: %w", err)
				}
				if err := assert.Equal(10, len(infos), "all ten categories should be listed"); err != nil {
					return err
				}
				counts := map[string]int{}
				for _, info := range infos {
					counts[info.Category] = info.Count
				}
				if err := assert.Equal(3, counts["Health"], "Health should hold three cards"); err != nil {
					return err
				}
				return assert.Equal(0, counts["Work"], "Work should be empty")
			}),
		},
	}
}

type drawnCard struct {
	Category  string `json:"category"`
	Text      string `json:"text"`
	Remaining int    `json:"remaining"`
	CycleEnd  bool   `json:"cycle_end"`
}

func parseCards(out string) ([]drawnCard, error) {
	var cards []drawnCard
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var card drawnCard
		if err := json.Unmarshal([]byte(line), &card); err != nil {
			return nil, fmt.Errorf("invalid JSON line %q: %w", line, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// DrawCycleScenario verifies that every card is shown once per cycle and a
// reshuffle never repeats the previous card.
func DrawCycleScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "cardvice-draw-cycle",
		Description: "Draws three full cycles of a category and checks coverage and the boundary guard.",
		Tags:        []string{"cli", "pool"},
		Steps: []harness.Step{
			harness.NewStep("Draw nine Health cards", func(ctx *harness.Context) error {
				projectDir, err := writeProject(ctx, "draw-cycle", "")
				if err != nil {
					return err
				}
				bin, err := findCardviceBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "draw", "-t", "health", "-n", "9", "--json").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if result.Error != nil {
					return fmt.Errorf("`cardvice draw` failed: %w", result.Error)
				}

				cards, err := parseCards(result.Stdout)
				if err != nil {
					return err
				}
				if err := assert.Equal(9, len(cards), "nine cards should be drawn"); err != nil {
					return err
				}
				ctx.Set("cards", cards)
				return nil
			}),
			harness.NewStep("Verify coverage per cycle", func(ctx *harness.Context) error {
				cards := ctx.Get("cards").([]drawnCard)
				for cycle := 0; cycle < 3; cycle++ {
					seen := map[string]bool{}
					for _, card := range cards[cycle*3 : cycle*3+3] {
						seen[card.Text] = true
					}
					if err := assert.Equal(3, len(seen), fmt.Sprintf("cycle %d should show every card once", cycle+1)); err != nil {
						return err
					}
					if err := assert.Equal(true, cards[cycle*3+2].CycleEnd, "last card of a cycle should be marked"); err != nil {
						return err
					}
				}
				for _, i := range []int{3, 6} {
					if cards[i].Text == cards[i-1].Text {
						return fmt.Errorf("card %d repeats the previous card across a reshuffle: %q", i+1, cards[i].Text)
					}
				}
				return nil
			}),
		},
	}
}

// DrawEmptyCategoryScenario checks the sentinel card for an empty category.
func DrawEmptyCategoryScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "cardvice-draw-empty-category",
		Tags: []string{"cli", "pool"},
		Steps: []harness.Step{
			harness.NewStep("Draw from the empty Work category", func(ctx *harness.Context) error {
				projectDir, err := writeProject(ctx, "draw-empty", "")
				if err != nil {
					return err
				}
				bin, err := findCardviceBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "draw", "-t", "work", "-n", "2").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if result.Error != nil {
					return fmt.Errorf("`cardvice draw` failed: %w", result.Error)
				}
				return assert.Equal(2, strings.Count(result.Stdout, "No advice available for this category."),
					"both draws should return the sentinel card")
			}),
		},
	}
}

// CatalogValidateInvalidScenario runs 'catalog validate' on a catalog with an
// unknown category.
func CatalogValidateInvalidScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "cardvice-catalog-validate-invalid",
		Tags: []string{"cli", "catalog"},
		Steps: []harness.Step{
			harness.NewStep("Validate a catalog with an unknown category", func(ctx *harness.Context) error {
				dir := ctx.NewDir("invalid-catalog")
				path := filepath.Join(dir, "bad.yml")
				if err := fs.WriteString(path, "categories:\n  Cooking:\n    - Salt the pasta water.\n"); err != nil {
					return err
				}
				bin, err := findCardviceBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "catalog", "validate", path).Dir(dir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(1, result.ExitCode, "validation should fail"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stderr, "Invalid catalog", "error should be reported"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "cardvice categories", "hint should point at the category list")
			}),
		},
	}
}

// CatalogSchemaScenario checks that the printed schema validates the shape.
func CatalogSchemaScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "cardvice-catalog-schema",
		Tags: []string{"cli", "catalog"},
		Steps: []harness.Step{
			harness.NewStep("Print the catalog schema", func(ctx *harness.Context) error {
				bin, err := findCardviceBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "catalog", "schema")
				result := cmd.Run()
				if result.Error != nil {
					return fmt.Errorf("`cardvice catalog schema` failed: %w", result.Error)
				}

				var schema map[string]interface{}
				if err := json.Unmarshal([]byte(result.Stdout), &schema); err != nil {
					return fmt.Errorf("schema is not valid JSON: %w", err)
				}
				return assert.Contains(result.Stdout, "Digital Life", "schema should enumerate the categories")
			}),
		},
	}
}
