package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[logging]
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50*time.Millisecond, cfg.Sim.TickRate)
	assert.Equal(t, 4.0, cfg.Sim.UnitScale)
	assert.Equal(t, "data/yaml/object_templates.yaml", cfg.Sim.TemplatesPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[sim]
tick_rate = "100ms"
unit_scale = 2.0
scripts_dir = "behaviors"

[logging]
format = "json"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.Sim.TickRate)
	assert.Equal(t, 2.0, cfg.Sim.UnitScale)
	assert.Equal(t, "behaviors", cfg.Sim.ScriptsDir)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
