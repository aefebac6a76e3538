package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	require.NoError(t, Load(""))

	assert.Equal(t, 10, viper.GetInt("min_runs"))
	assert.Equal(t, 0, viper.GetInt("warmup"))
	assert.Equal(t, 3.0, viper.GetFloat64("min_benchmarking_time"))
	assert.Equal(t, "auto", viper.GetString("style"))
	assert.Equal(t, ".hyperbench/history.db", viper.GetString("history_path"))
}

func TestLoadConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "hyperbench.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("min_runs: 25\nstyle: basic\n"), 0644))

	require.NoError(t, Load(cfg))

	assert.Equal(t, 25, viper.GetInt("min_runs"))
	assert.Equal(t, "basic", viper.GetString("style"))
	// Untouched keys keep their defaults.
	assert.Equal(t, 0, viper.GetInt("warmup"))
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("HYPERBENCH_MIN_RUNS", "42")

	require.NoError(t, Load(""))

	assert.Equal(t, 42, viper.GetInt("min_runs"))
}

func TestLoadMalformedConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "hyperbench.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("runs: [unclosed\n"), 0644))

	assert.Error(t, Load(cfg))
}
