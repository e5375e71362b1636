package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BENCH_API_KEY", "")
	t.Setenv("CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "https://api.benchling.com/v1/", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("BENCH_API_KEY", "env-key")
	t.Setenv("BENCH_BASE_URL", "https://bench.example.com/v1/")
	t.Setenv("CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "https://bench.example.com/v1/", cfg.BaseURL)
}

func TestSaveKey(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{ConfigDir: dir}

	require.NoError(t, cfg.SaveKey("my-secret-key"))
	assert.Equal(t, "my-secret-key", cfg.APIKey)
	assert.Equal(t, filepath.Join(dir, "api.key"), cfg.KeyPath())

	data, err := os.ReadFile(cfg.KeyPath())
	require.NoError(t, err)
	assert.Equal(t, "my-secret-key\n", string(data))

	t.Run("saved key is picked up by Load", func(t *testing.T) {
		t.Setenv("BENCH_API_KEY", "")
		t.Setenv("CONFIG_DIR", dir)

		loaded, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "my-secret-key", loaded.APIKey)
	})
}
