// Package config loads runtime configuration for the console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. CONSOLE_* environment variables, also read from a dotenv file (-env
//     path, or ./.env when present). Real environment variables win over
//     the file.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   API base URL
//	-d string   local SQLite database path
//	-l string   log format (text, json, zap)
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "db_path": "console.db",
//	  "request_timeout": "10s",
//	  "log_format": "json",
//	  "log_level": "info",
//	  "archive_bucket": "audit-logs",
//	  "archive_endpoint": "http://127.0.0.1:9000"
//	}
//
// request_timeout uses timex.Duration, so "10s" and 10000000000 are both
// accepted.
package config
