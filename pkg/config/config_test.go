package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 400, cfg.Sim.Length)
	assert.Equal(t, int64(0), cfg.Sim.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
sim:
  length: 250
  seed: 42
log:
  level: debug
  file: logs/sim.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Sim.Length)
	assert.Equal(t, int64(42), cfg.Sim.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs/sim.log", cfg.Log.File)
	// 未出现的字段保留默认值
	assert.Equal(t, 100, cfg.Log.MaxSize)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"sim": {"length": 80, "seed": 7}, "log": {"level": "warn"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Sim.Length)
	assert.Equal(t, int64(7), cfg.Sim.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Sim.Length = 1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Sim.Length = 0 // 0 交给下游取默认值
	assert.NoError(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MARKETSIM_LENGTH", "123")
	t.Setenv("MARKETSIM_SEED", "999")
	t.Setenv("MARKETSIM_LOG_LEVEL", "error")
	t.Setenv("MARKETSIM_LOG_FILE", "/tmp/x.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 123, cfg.Sim.Length)
	assert.Equal(t, int64(999), cfg.Sim.Seed)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
}

func TestEnvBadIntIgnored(t *testing.T) {
	t.Setenv("MARKETSIM_LENGTH", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Sim.Length)
}
