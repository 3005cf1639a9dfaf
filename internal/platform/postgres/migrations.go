package postgres

import "embed"

// MigrationsDir is the directory inside MigrationsFS holding the goose
// migration files.
const MigrationsDir = "migrations"

// MigrationsFS embeds the SQL migrations so the server binary and the
// integration tests apply the same schema without locating files on disk.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
