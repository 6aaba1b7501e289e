package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/apiconsole/internal/flagx"
	"github.com/dmitrijs2005/apiconsole/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept "3s" or integer nanoseconds. Absent fields keep earlier values.
type JsonConfig struct {
	APIBaseURL       string          `json:"api_base_url"`
	DatabasePath     string          `json:"db_path"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	LogFormat        string          `json:"log_format"`
	LogLevel         string          `json:"log_level"`
	ArchiveBucket    string          `json:"archive_bucket"`
	ArchiveRegion    string          `json:"archive_region"`
	ArchiveEndpoint  string          `json:"archive_endpoint"`
	ArchiveAccessKey string          `json:"archive_access_key"`
	ArchiveSecretKey string          `json:"archive_secret_key"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Without
// either flag it does nothing. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.ArchiveBucket, jc.ArchiveBucket)
	setString(&cfg.ArchiveRegion, jc.ArchiveRegion)
	setString(&cfg.ArchiveEndpoint, jc.ArchiveEndpoint)
	setString(&cfg.ArchiveAccessKey, jc.ArchiveAccessKey)
	setString(&cfg.ArchiveSecretKey, jc.ArchiveSecretKey)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
