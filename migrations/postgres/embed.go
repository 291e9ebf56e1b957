// Package migrations embeds SQL migration files.
package migrations

import "embed"

// FS contains the schema migrations applied by the pg store at startup.
//
//go:embed *.sql
var FS embed.FS
