package util

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the current user's home directory. KEEPER_HOME overrides it, which tests use to
// point cleanup paths at a temporary tree.
func HomeDir() string {
	if home := os.Getenv("KEEPER_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/"
	}
	return home
}

// ExpandHome replaces a leading "~" with the home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	return path
}
