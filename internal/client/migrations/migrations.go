// Package migrations embeds the goose migrations of the console's local
// SQLite store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
