// Package where implements a cross-platform resolver for application-specific filesystem paths.
// Resolving a path never touches the filesystem; writers create the directories they need.
package where

import (
	"os"
	"path/filepath"

	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "POKEDEX_CONFIG_PATH"

// Config resolves the absolute path to the primary application configuration directory.
// The POKEDEX_CONFIG_PATH environment variable takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return custom
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(os.TempDir(), "config")
	}
	return filepath.Join(base, constant.Pokedex)
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(os.TempDir(), "cache")
	}
	return filepath.Join(base, constant.Pokedex)
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return filepath.Join(Config(), "logs")
}

// State resolves the file holding user preferences such as the theme.
func State() string {
	return filepath.Join(Config(), "state.json")
}

// Catalog resolves the on-disk cache of fetched entries.
func Catalog() string {
	return filepath.Join(Cache(), "catalog.json")
}

// Queries resolves the absolute path to the localized search query suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Ensure creates dir and its parents.
func Ensure(dir string) error {
	return filesystem.API().MkdirAll(dir, os.ModePerm)
}
