package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Generator.Jobs)
	assert.Equal(t, 3, cfg.Generator.Machines)
	assert.Equal(t, "INORDER", cfg.Generator.Rule)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadFromFile(t *testing.T) {
	content := `
[generator]
jobs = 12
machines = 6
min_duration = 2.5
max_duration = 20.0
seed = 42
rule = "SPT"

[export]
enabled = true
dir = "out"
formats = ["csv", "txt"]

[database]
enabled = true
dsn = "runs.db"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 12, cfg.Generator.Jobs)
	assert.Equal(t, 6, cfg.Generator.Machines)
	assert.Equal(t, 2.5, cfg.Generator.MinDuration)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, "SPT", cfg.Generator.Rule)
	assert.True(t, cfg.Export.Enabled)
	assert.Equal(t, []string{"csv", "txt"}, cfg.Export.Formats)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "runs.db", cfg.Database.DSN)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	content := `
[generator]
jobs = 9
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Generator.Jobs)
	assert.Equal(t, 3, cfg.Generator.Machines)
	assert.Equal(t, "artifacts", cfg.Export.Dir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero jobs", func(c *Config) { c.Generator.Jobs = 0 }, "jobs must be > 0"},
		{"zero machines", func(c *Config) { c.Generator.Machines = 0 }, "machines must be > 0"},
		{"bad rule", func(c *Config) { c.Generator.Rule = "FIFO" }, "unknown priority rule"},
		{"bad format", func(c *Config) { c.Export.Formats = []string{"xml"} }, "unknown export format"},
		{"db enabled without dsn", func(c *Config) { c.Database.Enabled = true; c.Database.DSN = "" }, "DSN must be specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAcceptsDegenerateDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.MinDuration = -5
	cfg.Generator.MaxDuration = -10
	assert.NoError(t, cfg.Validate())
}
