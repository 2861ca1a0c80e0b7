package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tapemachine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, NoBudgetOverride, cfg.Budget)
	assert.False(t, cfg.HasBudget())
	assert.False(t, cfg.StopOnError)
	assert.False(t, cfg.Trace)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "format: yaml\nbudget: 50\nstop_on_error: true\n")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 50, cfg.Budget)
	assert.True(t, cfg.HasBudget())
	assert.True(t, cfg.StopOnError)
}

func TestLoadHomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".tapemachine.yaml"), []byte("trace: true\n"), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "format: yaml\n")
	t.Setenv("TAPEMACHINE_FORMAT", "json")
	t.Setenv("TAPEMACHINE_BUDGET", "7")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 7, cfg.Budget)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	path := writeConfig(t, "format: xml\n")
	_, err = Load(New(), path)
	assert.ErrorContains(t, err, `invalid format "xml"`)

	path = writeConfig(t, "budget: -5\n")
	_, err = Load(New(), path)
	assert.ErrorContains(t, err, "invalid budget")
}
