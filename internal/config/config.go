// Package config provides unified configuration loading for gridmeet.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all gridmeet configuration settings.
type Config struct {
	// Simulation contains defaults for trial and analysis runs.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Logging contains settings for operational and trial-trace logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig holds the default simulation parameters. CLI flags
// override these per invocation.
type SimulationConfig struct {
	// GridSize is the grid dimension n. Must be >= 1; values between 3
	// and 10 keep paths human-legible.
	GridSize int `json:"grid_size" yaml:"grid_size"`

	// Trials is the default batch size for analysis runs. Must be >= 1;
	// 100 to 100000 is the recommended interactive range.
	Trials int `json:"trials" yaml:"trials"`

	// Workers is the number of goroutines running trials.
	// 0 selects one worker per CPU.
	Workers int `json:"workers" yaml:"workers"`

	// Seed seeds the coin-flip generators. 0 draws a random seed per run.
	Seed uint64 `json:"seed" yaml:"seed"`
}

// LoggingConfig configures gridmeet's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", "warn",
	// or "error".
	Level string `json:"level" yaml:"level"`

	// TracePath, when set, appends one JSONL line per completed trial to
	// the given file. Empty disables tracing.
	TracePath string `json:"trace_path,omitempty" yaml:"trace_path,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			GridSize: 5,
			Trials:   10000,
			Workers:  0,
			Seed:     0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment
// variables. Order: defaults -> ~/.gridmeet/config.yaml -> environment.
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".gridmeet", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Simulation.GridSize < 1 {
		return fmt.Errorf("grid_size must be >= 1, got %d", c.Simulation.GridSize)
	}

	if c.Simulation.Trials < 1 {
		return fmt.Errorf("trials must be >= 1, got %d", c.Simulation.Trials)
	}

	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Simulation.Workers)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("GRIDMEET_GRID_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.GridSize = n
		}
	}

	if v := os.Getenv("GRIDMEET_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.Trials = n
		}
	}

	if v := os.Getenv("GRIDMEET_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.Workers = n
		}
	}

	if v := os.Getenv("GRIDMEET_SEED"); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			config.Simulation.Seed = s
		}
	}

	if v := os.Getenv("GRIDMEET_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("GRIDMEET_TRACE_PATH"); v != "" {
		config.Logging.TracePath = v
	}
}
