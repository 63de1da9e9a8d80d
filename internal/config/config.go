package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultRoot      = "~/Documents"
	DefaultIndexPath = "~/.config/jdex/index.json"
)

// Root returns the Johnny Decimal root from the JD_ROOT env var,
// falling back to DefaultRoot. The path is ~-expanded.
func Root() string {
	if env := os.Getenv("JD_ROOT"); env != "" {
		return ExpandHome(env)
	}
	return ExpandHome(DefaultRoot)
}

// IndexPath returns the persisted index location from the JD_INDEX env var,
// falling back to DefaultIndexPath. The path is ~-expanded.
func IndexPath() string {
	if env := os.Getenv("JD_INDEX"); env != "" {
		return ExpandHome(env)
	}
	return ExpandHome(DefaultIndexPath)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
