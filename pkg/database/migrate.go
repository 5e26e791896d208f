package database

import (
	"database/sql"
	"fmt"
	"strings"
)

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS gematria_words (
	id BIGSERIAL PRIMARY KEY,
	text TEXT NOT NULL,
	normalized TEXT NOT NULL UNIQUE,
	gematria INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_gematria_words_gematria ON gematria_words (gematria);

CREATE INDEX IF NOT EXISTS idx_gematria_words_created_at ON gematria_words (created_at DESC);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS gematria_words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	normalized TEXT NOT NULL UNIQUE,
	gematria INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_gematria_words_gematria ON gematria_words (gematria);

CREATE INDEX IF NOT EXISTS idx_gematria_words_created_at ON gematria_words (created_at DESC);
`

// Migrate applies the embedded schema for the configured driver.
// Statements are split on ";" and applied one by one; everything is
// IF NOT EXISTS so reruns are no-ops.
func Migrate(db *sql.DB, driver string) error {
	schema := schemaPostgres
	if driver == DriverSQLite {
		schema = schemaSQLite
	}

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
