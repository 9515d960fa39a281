package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

// Config for opening the job store.
type Config struct {
	Driver      string // "sqlite" or "postgres"
	DSN         string
	DialTimeout time.Duration
}

// Open connects to the job store and verifies the connection.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 3 * time.Second
	}

	var driverName string
	switch cfg.Driver {
	case "sqlite":
		driverName = "sqlite"
	case "postgres":
		driverName = "pgx"
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	logger.Info("connecting to database", "driver", cfg.Driver)
	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, err
	}
	if cfg.Driver == "sqlite" {
		// modernc sqlite serializes writes; one connection keeps in-memory
		// databases coherent as well
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		_ = db.Close()
		return nil, err
	}

	logger.Info("successfully connected to database")
	return db, nil
}

const createJobsTable = `
CREATE TABLE IF NOT EXISTS extraction_job (
	id            TEXT PRIMARY KEY,
	document_name TEXT NOT NULL,
	document_type TEXT NOT NULL,
	strategy      TEXT NOT NULL,
	status        TEXT NOT NULL,
	result_json   TEXT,
	confidence    REAL NOT NULL DEFAULT 0,
	error_message TEXT,
	started_at    TEXT NOT NULL,
	finished_at   TEXT
)`

// Migrate creates the job-store schema if needed.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createJobsTable); err != nil {
		return fmt.Errorf("create extraction_job table: %w", err)
	}
	return nil
}

// rebind converts ?-style placeholders to $n for postgres.
func rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
