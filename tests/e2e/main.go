package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/tend/pkg/app"
	"github.com/grovetools/tend/pkg/harness"
)

// scenarios lists every end-to-end scenario. The play scenario drives the
// TUI and only runs locally.
func scenarios() []*harness.Scenario {
	return []*harness.Scenario{
		VersionScenario(),
		CategoriesScenario(),
		DrawCycleScenario(),
		DrawEmptyCategoryScenario(),
		CatalogValidateInvalidScenario(),
		CatalogSchemaScenario(),
		ConfigLayeringScenario(),
		ConfigInvalidModeScenario(),
		PlayTUIScenario(),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Execute(ctx, scenarios()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
