package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading ~ and environment variables in path and returns
// it as an absolute path.
func Expand(path string) (string, error) {
	home, err := expandHome(os.ExpandEnv(path))
	if err != nil {
		return "", err
	}
	return filepath.Abs(home)
}

// Relative resolves path against base when it is neither absolute nor
// home-relative. Other paths are returned untouched so Expand can finish them
// later.
func Relative(path, base string) string {
	if path == "" || filepath.IsAbs(path) || isHomePath(path) || strings.HasPrefix(path, "$") {
		return path
	}
	return filepath.Join(base, path)
}

func isHomePath(path string) bool {
	return path == "~" || strings.HasPrefix(path, "~/")
}

func expandHome(path string) (string, error) {
	if !isHomePath(path) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
