package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://api:8080/api", "-d", "/tmp/c.db", "-l", "json", "-t", "10"},
			expected: &Config{
				APIBaseURL:     "http://api:8080/api",
				DatabasePath:   "/tmp/c.db",
				LogFormat:      "json",
				RequestTimeout: 10 * time.Second,
			},
		},
		{
			name:     "unknown flags ignored",
			args:     []string{"cmd", "-c", "cfg.json", "-env", ".env.test", "-a=http://x"},
			expected: &Config{APIBaseURL: "http://x"},
		},
		{name: "bad timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
