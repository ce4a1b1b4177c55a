package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locfang/locfang/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".locfang.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultFormat, cfg.Output.Format)
	assert.False(t, cfg.Output.ShowFiles)
	assert.Equal(t, config.DefaultWorkers, cfg.Analysis.Workers)
	assert.Equal(t, config.DefaultCacheSize, cfg.Analysis.CacheSize)
	assert.Empty(t, cfg.Analysis.IgnorePatterns)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
output:
  format: json
  show_files: true
analysis:
  workers: 4
  ignore_patterns:
    - 'generated/'
  languages:
    - Go
    - Python
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowFiles)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, []string{"generated/"}, cfg.Analysis.IgnorePatterns)
	assert.Equal(t, []string{"Go", "Python"}, cfg.Analysis.Languages)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "output:\n  format: pdf\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestLoadRejectsNegativeWorkers(t *testing.T) {
	path := writeConfig(t, "analysis:\n  workers: -2\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidWorkers)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "outpt:\n  format: json\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrSchemaViolation)
}

func TestLoadRejectsWrongTypes(t *testing.T) {
	path := writeConfig(t, "analysis:\n  workers: lots\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrSchemaViolation)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LOCFANG_OUTPUT_FORMAT", "yaml")

	path := writeConfig(t, "output:\n  format: json\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultFormat, cfg.Output.Format)
}
