package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("process environment", func(t *testing.T) {
		t.Chdir(t.TempDir())
		os.Args = []string{"testbin"}
		t.Setenv(EnvAPIURL, "http://env/api")
		t.Setenv(EnvRequestTimeout, "3s")
		t.Setenv(EnvArchiveBucket, "audit")

		cfg := &Config{DatabasePath: "keep.db"}
		parseEnv(cfg)

		assert.Equal(t, "http://env/api", cfg.APIBaseURL)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "audit", cfg.ArchiveBucket)
		assert.Equal(t, "keep.db", cfg.DatabasePath)
	})

	t.Run("default .env file, environment wins", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		writeEnvFile(t, dir, ".env", "CONSOLE_DB_PATH=file.db\nCONSOLE_LOG_LEVEL=debug\n")
		os.Args = []string{"testbin"}
		t.Setenv(EnvLogLevel, "error")

		cfg := &Config{}
		parseEnv(cfg)

		assert.Equal(t, "file.db", cfg.DatabasePath)
		assert.Equal(t, "error", cfg.LogLevel)
		_, set := os.LookupEnv(EnvDBPath)
		assert.False(t, set, "the dotenv file must not leak into the process environment")
	})

	t.Run("explicit -env file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(t.TempDir())
		p := writeEnvFile(t, dir, "console.env", "CONSOLE_ARCHIVE_REGION=eu-central-1\n")
		os.Args = []string{"testbin", "-env", p}

		cfg := &Config{}
		parseEnv(cfg)
		assert.Equal(t, "eu-central-1", cfg.ArchiveRegion)
	})

	t.Run("missing -env file panics", func(t *testing.T) {
		t.Chdir(t.TempDir())
		os.Args = []string{"testbin", "-env", "/nonexistent/console.env"}
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("bad timeout panics", func(t *testing.T) {
		t.Chdir(t.TempDir())
		os.Args = []string{"testbin"}
		t.Setenv(EnvRequestTimeout, "soon")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
