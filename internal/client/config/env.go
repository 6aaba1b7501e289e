package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/apiconsole/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variables read by parseEnv.
const (
	EnvAPIURL           = "CONSOLE_API_URL"
	EnvDBPath           = "CONSOLE_DB_PATH"
	EnvRequestTimeout   = "CONSOLE_REQUEST_TIMEOUT"
	EnvLogFormat        = "CONSOLE_LOG_FORMAT"
	EnvLogLevel         = "CONSOLE_LOG_LEVEL"
	EnvArchiveBucket    = "CONSOLE_ARCHIVE_BUCKET"
	EnvArchiveRegion    = "CONSOLE_ARCHIVE_REGION"
	EnvArchiveEndpoint  = "CONSOLE_ARCHIVE_ENDPOINT"
	EnvArchiveAccessKey = "CONSOLE_ARCHIVE_ACCESS_KEY"
	EnvArchiveSecretKey = "CONSOLE_ARCHIVE_SECRET_KEY"
)

// parseEnv overlays cfg with CONSOLE_* variables. Values come from the
// process environment first and then from a dotenv file: the one named by
// -env, or ./.env when present. The process environment is not modified.
//
// A missing -env file or an unparsable CONSOLE_REQUEST_TIMEOUT panics.
func parseEnv(cfg *Config) {
	file := readEnvFile()
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return file[key]
	}

	setString(&cfg.APIBaseURL, lookup(EnvAPIURL))
	setString(&cfg.DatabasePath, lookup(EnvDBPath))
	setString(&cfg.LogFormat, lookup(EnvLogFormat))
	setString(&cfg.LogLevel, lookup(EnvLogLevel))
	setString(&cfg.ArchiveBucket, lookup(EnvArchiveBucket))
	setString(&cfg.ArchiveRegion, lookup(EnvArchiveRegion))
	setString(&cfg.ArchiveEndpoint, lookup(EnvArchiveEndpoint))
	setString(&cfg.ArchiveAccessKey, lookup(EnvArchiveAccessKey))
	setString(&cfg.ArchiveSecretKey, lookup(EnvArchiveSecretKey))

	if v := lookup(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

func readEnvFile() map[string]string {
	if path := flagx.EnvFileFlag(); path != "" {
		vals, err := godotenv.Read(path)
		if err != nil {
			panic(err)
		}
		return vals
	}

	vals, err := godotenv.Read(defaultEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		panic(err)
	}
	return vals
}
