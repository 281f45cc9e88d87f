package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all cpkit configuration.
type Config struct {
	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Regression battery
	Battery BatteryConfig `yaml:"battery"`

	// Run history database
	History HistoryConfig `yaml:"history"`

	// Terminal output
	UI UIConfig `yaml:"ui"`
}

// UIConfig configures terminal rendering of reports.
type UIConfig struct {
	Color bool   `yaml:"color"`
	Theme string `yaml:"theme"` // light, dark
}

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging.format values.
var ValidLogFormats = []string{"json", "text"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},

		Battery: DefaultBatteryConfig(),

		History: HistoryConfig{
			Enabled:      false,
			DatabasePath: filepath.Join(".cpkit", "history.db"),
			Keep:         200,
		},

		UI: UIConfig{
			Color: true,
			Theme: "dark",
		},
	}
}

// DefaultConfigPath returns the canonical config path for a workspace.
func DefaultConfigPath(workspace string) string {
	return filepath.Join(workspace, ".cpkit", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Defaults still honor the environment.
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("CPKIT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if path := os.Getenv("CPKIT_BATTERY"); path != "" {
		c.Battery.Path = path
	}
	// Pointing at a database implies wanting history.
	if path := os.Getenv("CPKIT_HISTORY_DB"); path != "" {
		c.History.DatabasePath = path
		c.History.Enabled = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.UI.Color = false
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	if c.Battery.Parallelism < 1 {
		return fmt.Errorf("battery.parallelism must be >= 1")
	}
	if c.History.Enabled && c.History.DatabasePath == "" {
		return fmt.Errorf("history.database_path required when history is enabled")
	}
	return nil
}

// GetBatteryTimeout returns the per-case battery timeout as a duration.
func (c *Config) GetBatteryTimeout() time.Duration {
	d, err := time.ParseDuration(c.Battery.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// ResolvePath anchors a relative path at the workspace.
func ResolvePath(workspace, path string) string {
	if path == "" || filepath.IsAbs(path) || workspace == "" {
		return path
	}
	return filepath.Join(workspace, path)
}
