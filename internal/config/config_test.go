package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.DBPath)
	assert.False(t, cfg.Persistent())
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, defaultAccent, cfg.ThemeAccent)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	cfg := loadFrom(envOf(map[string]string{
		"TUBEPILE_DB":           "/tmp/piles.db",
		"TUBEPILE_LOG_USECASES": "true",
		"TUBEPILE_THEME_ACCENT": "#ff8800",
	}))
	assert.Equal(t, "/tmp/piles.db", cfg.DBPath)
	assert.True(t, cfg.Persistent())
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, "#ff8800", cfg.ThemeAccent)
}

func TestLoadConfig_MalformedValuesFallBack(t *testing.T) {
	cfg := loadFrom(envOf(map[string]string{
		"TUBEPILE_LOG_USECASES": "maybe",
		"TUBEPILE_THEME_ACCENT": "orange",
	}))
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, defaultAccent, cfg.ThemeAccent)
}

func TestLoadConfig_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := loadFrom(envOf(map[string]string{"TUBEPILE_DB": "~/.tubepile/piles.db"}))
	assert.Equal(t, filepath.Join(home, ".tubepile", "piles.db"), cfg.DBPath)
}

func TestLoadConfig_UsesProcessEnv(t *testing.T) {
	t.Setenv("TUBEPILE_DB", "")
	t.Setenv("TUBEPILE_LOG_USECASES", "1")
	cfg := LoadConfig()
	assert.False(t, cfg.Persistent())
	assert.True(t, cfg.LogUseCases)
}
