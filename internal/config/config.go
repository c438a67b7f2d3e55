// Package config reads tubepile settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Config holds process-wide settings.
type Config struct {
	// DBPath is the SQLite file backing the store. Empty keeps groups in
	// memory for the lifetime of the process.
	DBPath      string
	LogUseCases bool
	ThemeAccent string
}

const defaultAccent = "#2E8B57"

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// DefaultConfig returns an in-memory, quiet configuration.
func DefaultConfig() Config {
	return Config{
		ThemeAccent: defaultAccent,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or malformed values.
func LoadConfig() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("TUBEPILE_DB"); v != "" {
		cfg.DBPath = expandHome(v)
	}
	if v := getenv("TUBEPILE_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := strings.TrimSpace(getenv("TUBEPILE_THEME_ACCENT")); hexColor.MatchString(v) {
		cfg.ThemeAccent = v
	}

	return cfg
}

// Persistent reports whether groups survive the process.
func (c Config) Persistent() bool {
	return c.DBPath != ""
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
