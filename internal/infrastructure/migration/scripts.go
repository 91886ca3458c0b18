package migration

import "embed"

const (
	gooseDir   = "scripts/goose"
	migrateDir = "scripts/migrate"
)

//go:embed scripts/goose/*.sql
var gooseScripts embed.FS

//go:embed scripts/migrate/*.sql
var migrateScripts embed.FS
