package config

import (
	"time"

	"github.com/dmitrijs2005/apiconsole/internal/client/archive"
)

// Config holds runtime settings for the console.
//
// Fields:
//   - APIBaseURL: root of the admin REST API; resource scopes are appended.
//   - DatabasePath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request HTTP timeout; 0 means none.
//   - LogFormat / LogLevel: see logging.New.
//   - Archive*: optional S3 bucket for exported audit logs.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	LogFormat      string
	LogLevel       string

	ArchiveBucket    string
	ArchiveRegion    string
	ArchiveEndpoint  string
	ArchiveAccessKey string
	ArchiveSecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DatabasePath = "console.db"
	c.RequestTimeout = 0
	c.LogFormat = "text"
	c.LogLevel = "warn"
	c.ArchiveRegion = "us-east-1"
}

// Archive returns the archive settings.
func (c *Config) Archive() archive.Config {
	return archive.Config{
		Bucket:    c.ArchiveBucket,
		Region:    c.ArchiveRegion,
		Endpoint:  c.ArchiveEndpoint,
		AccessKey: c.ArchiveAccessKey,
		SecretKey: c.ArchiveSecretKey,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays JSON (if
// present), environment (including an optional .env file) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
