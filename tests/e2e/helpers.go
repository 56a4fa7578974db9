package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// findCardviceBinary finds the cardvice binary under test.
// It relies on the Makefile setting the PATH to include the local ./bin directory.
func findCardviceBinary() (string, error) {
	path, err := exec.LookPath("cardvice")
	if err != nil {
		return "", fmt.Errorf("could not find 'cardvice' binary in PATH. Ensure 'make test-e2e' is used")
	}
	return path, nil
}

const testCatalog = `name: e2e deck
categories:
  Health:
    - Drink a glass of water.
    - Stand up and stretch.
    - Go to bed on time.
  Money:
    - Check your subscriptions.
  Work: []
`

// writeProject creates a project directory with a catalog and a cardvice.yml
// pointing at it.
func writeProject(ctx *harness.Context, name string, extraConfig string) (string, error) {
	projectDir := ctx.NewDir(name)
	if err := fs.WriteString(filepath.Join(projectDir, "advice.yml"), testCatalog); err != nil {
		return "", fmt.Errorf("failed to write catalog: %w", err)
	}
	cfg := "catalog: advice.yml\n" + extraConfig
	if err := fs.WriteString(filepath.Join(projectDir, "cardvice.yml"), cfg); err != nil {
		return "", fmt.Errorf("failed to write cardvice.yml: %w", err)
	}
	return projectDir, nil
}
