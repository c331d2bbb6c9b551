package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("MissingFileUsesDefaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, "127.0.0.1:8050", cfg.Addr())
		assert.True(t, cfg.App.Debug)
		assert.Equal(t, "ai_job_trends_dataset.csv", cfg.Dataset.Path)
		assert.Equal(t, 4.0, cfg.Chart.SizeMin)
	})

	t.Run("FileOverlaysDefaults", func(t *testing.T) {
		path := writeConfig(t, `
app:
  port: 9000
dataset:
  index: memory
chart:
  size_max: 30
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.App.Port)
		assert.Equal(t, "127.0.0.1", cfg.App.Host)
		assert.Equal(t, IndexMemory, cfg.Dataset.Index)
		assert.Equal(t, 30.0, cfg.Chart.SizeMax)
		assert.Equal(t, "#2ecc71", cfg.Chart.CreationColor)
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		path := writeConfig(t, "app:\n  port: 9000\n")
		t.Setenv("AITRENDS_PORT", "9100")
		t.Setenv("AITRENDS_DEBUG", "false")
		t.Setenv("AITRENDS_DATASET", "/data/jobs.csv")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9100, cfg.App.Port)
		assert.False(t, cfg.App.Debug)
		assert.Equal(t, "/data/jobs.csv", cfg.Dataset.Path)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := writeConfig(t, "app: [")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("InvalidValues", func(t *testing.T) {
		path := writeConfig(t, `
app:
  port: 70000
dataset:
  index: postgres
chart:
  loss_color: red
  size_min: 80
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.port must be 1..65535")
		assert.Contains(t, err.Error(), "dataset.index must be sqlite or memory")
		assert.Contains(t, err.Error(), "chart.loss_color")
		assert.Contains(t, err.Error(), "chart.size_min")
	})
}

func TestConfigPath(t *testing.T) {
	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yml", path)

	t.Setenv("AITRENDS_CONFIG", "/etc/aitrends.yml")
	path, err = ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/aitrends.yml", path)
}
