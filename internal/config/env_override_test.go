package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("CPKIT_LOG_LEVEL replaces level", func(t *testing.T) {
		t.Setenv("CPKIT_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("CPKIT_HISTORY_DB enables history", func(t *testing.T) {
		t.Setenv("CPKIT_HISTORY_DB", "/tmp/runs.db")

		cfg := DefaultConfig()
		require.False(t, cfg.History.Enabled)
		cfg.applyEnvOverrides()

		assert.True(t, cfg.History.Enabled)
		assert.Equal(t, "/tmp/runs.db", cfg.History.DatabasePath)
	})

	t.Run("CPKIT_BATTERY sets path", func(t *testing.T) {
		t.Setenv("CPKIT_BATTERY", "cases.yaml")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "cases.yaml", cfg.Battery.Path)
	})

	t.Run("NO_COLOR disables color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.False(t, cfg.UI.Color)
	})

	t.Run("empty values leave config alone", func(t *testing.T) {
		t.Setenv("CPKIT_LOG_LEVEL", "")
		t.Setenv("CPKIT_HISTORY_DB", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.False(t, cfg.History.Enabled)
	})
}
