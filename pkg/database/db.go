package database

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Driver string

	// postgres
	Username string
	Password string
	Endpoint string
	Port     string
	Name     string
	SSLMode  string

	// sqlite
	Path string
}

// DefaultConfig reads connection settings from the environment.
// GEMATRIA_SQLITE_PATH forces a local SQLite file; otherwise the DB_*
// variables select a PostgreSQL instance, with dev defaults matching
// a local postgres.
func DefaultConfig() Config {
	if p := os.Getenv("GEMATRIA_SQLITE_PATH"); p != "" {
		return Config{Driver: DriverSQLite, Path: p}
	}

	return Config{
		Driver:   DriverPostgres,
		Username: envOr("DB_USERNAME", "user"),
		Password: envOr("DB_PASSWORD", "password"),
		Endpoint: envOr("DB_ENDPOINT", "localhost"),
		Port:     envOr("DB_PORT", "5432"),
		Name:     envOr("DB_NAME", "gematria_db"),
		SSLMode:  envOr("DB_SSLMODE", "disable"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// DSN builds the driver connection string. The postgres password is
// URL-escaped so credentials with special characters survive.
func (c Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Username, url.QueryEscape(c.Password), c.Endpoint, c.Port, c.Name, c.SSLMode)
}

// Redacted is DSN with the password masked, safe for logs.
func (c Config) Redacted() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + c.Path
	}
	return fmt.Sprintf("postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.Username, c.Endpoint, c.Port, c.Name, c.SSLMode)
}

// Open opens the configured database without pinging it, so the API
// can start and answer health checks even when the store is down.
func Open(cfg Config) (*sql.DB, error) {
	if cfg.Driver == DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("ensure data dir: %w", err)
		}
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma journal_mode: %w", err)
		}
	}

	return db, nil
}

func MustOpen(cfg Config) *sql.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	return db
}
