package migrations

import "embed"

// FS contains embedded SQLite migrations for compendium content storage.
//
//go:embed content/*.sql
var FS embed.FS
