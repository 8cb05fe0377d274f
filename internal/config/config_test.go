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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DB_PATH", "ENV", "CACHE_SIZE"} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("file values", func(t *testing.T) {
		path := writeConfig(t, "port: \"9090\"\ndb_path: /tmp/shelf.db\ncache_size: 16\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "/tmp/shelf.db", cfg.DBPath)
		assert.Equal(t, 16, cfg.CacheSize)
		assert.Equal(t, int64(1024*1024), cfg.MaxUploadBytes)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfig(t, "port: \"9090\"\nenv: development\n")
		t.Setenv("PORT", "7070")
		t.Setenv("ENV", "production")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Port)
		assert.True(t, cfg.IsProd())
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "port: [\n"))
		assert.Error(t, err)
	})

	t.Run("invalid cache size", func(t *testing.T) {
		_, err := Load(writeConfig(t, "cache_size: 0\n"))
		assert.Error(t, err)
	})

	t.Run("bad CACHE_SIZE", func(t *testing.T) {
		t.Setenv("CACHE_SIZE", "lots")
		_, err := Load(writeConfig(t, ""))
		assert.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.validate())
	assert.False(t, cfg.IsProd())
}
