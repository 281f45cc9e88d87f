package config

import "runtime"

// BatteryConfig configures regression battery runs.
type BatteryConfig struct {
	// Path to the battery file; relative paths resolve against the workspace.
	Path string `yaml:"path" json:"path,omitempty"`

	// Parallelism bounds concurrent cases when FailFast is off.
	Parallelism int `yaml:"parallelism" json:"parallelism,omitempty"`

	// FailFast runs cases in order and stops at the first failure.
	FailFast bool `yaml:"fail_fast" json:"fail_fast,omitempty"`

	// Timeout per case, e.g. "5s". Cases may override it.
	Timeout string `yaml:"timeout" json:"timeout,omitempty"`
}

// DefaultBatteryConfig returns sensible defaults.
func DefaultBatteryConfig() BatteryConfig {
	return BatteryConfig{
		Path:        "",
		Parallelism: max(1, runtime.NumCPU()),
		FailFast:    false,
		Timeout:     "10s",
	}
}

// HistoryConfig configures the run history database.
type HistoryConfig struct {
	Enabled      bool   `yaml:"enabled" json:"enabled,omitempty"`
	DatabasePath string `yaml:"database_path" json:"database_path,omitempty"`
	Keep         int    `yaml:"keep" json:"keep,omitempty"` // runs retained after pruning; 0 = all
}
