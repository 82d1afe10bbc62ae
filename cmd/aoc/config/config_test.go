package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.EqualValues(t, 1_000_000_000, cfg.Spin.Cycles)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nsearch:\n  max_states: 500\n  all_paths: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 500, cfg.Search.MaxStates)
	assert.True(t, cfg.Search.AllPaths)
	assert.EqualValues(t, 1_000_000_000, cfg.Spin.Cycles, "unset keys keep defaults")
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"spin": {"cycles": 3}}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 3, cfg.Spin.Cycles)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nspin:\n  cycles: 10\n"), 0o600))
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvSpinCycles, "42")
	t.Setenv(EnvMaxStates, "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.EqualValues(t, 42, cfg.Spin.Cycles)
	assert.Equal(t, 7, cfg.Search.MaxStates)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxStates, "-3")
	_, err = Load("")
	assert.Error(t, err)

	t.Setenv(EnvMaxStates, "many")
	_, err = Load("")
	assert.ErrorContains(t, err, EnvMaxStates)
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]string{"debug": "DEBUG", "WARN": "WARN", "error": "ERROR", "info": "INFO", "": "INFO"} {
		assert.Equal(t, want, Config{LogLevel: in}.Level().String(), in)
	}
}

func TestLoad_Telemetry(t *testing.T) {
	t.Setenv(EnvTelemetry, "stdout")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "stdout", cfg.Telemetry)

	t.Setenv(EnvTelemetry, "jaeger")
	_, err = Load("")
	assert.Error(t, err)
}

func TestRead_SkipsValidation(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")
	cfg, err := Read("")
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.LogLevel)
	assert.Error(t, cfg.Validate())
}
