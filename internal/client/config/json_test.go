package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":     "https://admin.example.com/api",
		"request_timeout":  "10s",
		"archive_bucket":   "audit",
		"archive_endpoint": "http://127.0.0.1:9000",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{DatabasePath: "keep.db"}
		parseJson(cfg)

		assert.Equal(t, "https://admin.example.com/api", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "audit", cfg.ArchiveBucket)
		assert.Equal(t, "http://127.0.0.1:9000", cfg.ArchiveEndpoint)
		assert.Equal(t, "keep.db", cfg.DatabasePath, "absent fields keep earlier values")
	})

	t.Run("nanosecond duration", func(t *testing.T) {
		p := writeTempJSON(t, dir, "ns.json", map[string]any{"request_timeout": 1500000000})
		os.Args = []string{"testbin", "-c", p}

		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "defaults", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "defaults", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
