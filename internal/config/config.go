package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"jobShop/internal/jssp"
)

// Config is the application configuration for the jssp CLI.
type Config struct {
	Generator GeneratorConfig `toml:"generator"`
	Export    ExportConfig    `toml:"export"`
	Database  DatabaseConfig  `toml:"database"`
}

// GeneratorConfig holds the defaults for random instance generation.
type GeneratorConfig struct {
	Jobs        int     `toml:"jobs"`
	Machines    int     `toml:"machines"`
	MinDuration float64 `toml:"min_duration"`
	MaxDuration float64 `toml:"max_duration"`
	Seed        int64   `toml:"seed"`
	Rule        string  `toml:"rule"`
}

// ExportConfig controls which solution files get written and where.
type ExportConfig struct {
	Enabled bool     `toml:"enabled"`
	Dir     string   `toml:"dir"`
	Formats []string `toml:"formats"`
}

// DatabaseConfig controls the sqlite run history.
type DatabaseConfig struct {
	Enabled bool   `toml:"enabled"`
	DSN     string `toml:"dsn"`
}

func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Jobs:        5,
			Machines:    3,
			MinDuration: 1.0,
			MaxDuration: 10.0,
			Seed:        777,
			Rule:        jssp.RuleInOrder,
		},
		Export: ExportConfig{
			Enabled: false,
			Dir:     "artifacts",
			Formats: []string{"json", "csv", "txt"},
		},
		Database: DatabaseConfig{
			Enabled: false,
			DSN:     "jssp_runs.db",
		},
	}
}

// Load returns the defaults, overridden by the TOML file at path if one
// is given.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Generator.Jobs <= 0 {
		return fmt.Errorf("generator jobs must be > 0 (got %d)", c.Generator.Jobs)
	}
	if c.Generator.Machines <= 0 {
		return fmt.Errorf("generator machines must be > 0 (got %d)", c.Generator.Machines)
	}
	// duration bounds are intentionally unchecked: the generator normalizes
	// degenerate ranges instead of rejecting them
	if _, err := jssp.NewRule(c.Generator.Rule); err != nil {
		return err
	}
	for _, f := range c.Export.Formats {
		switch f {
		case "json", "csv", "txt":
		default:
			return fmt.Errorf("unknown export format %q (must be json, csv, or txt)", f)
		}
	}
	if c.Database.Enabled && c.Database.DSN == "" {
		return fmt.Errorf("database DSN must be specified when the run history is enabled")
	}
	return nil
}
