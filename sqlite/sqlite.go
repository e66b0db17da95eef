// Package sqlite provides SQLite-based storage for gazette articles.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
// It is safe to call on every process start.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one
	// connection. This also serializes concurrent upserts.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write
	// performance. Not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// createSchema creates the database tables if they don't exist. Both
// tables are keyed by the article identifier: metadata holds the
// metadata-only projection, articles additionally holds the normalized
// body text. Every column defaults to its empty value so the schema
// stays stable regardless of which optional fields an article carries.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS metadata (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			rank TEXT NOT NULL DEFAULT '',
			url_xml TEXT NOT NULL DEFAULT '',
			url_pdf TEXT NOT NULL DEFAULT '',
			disposition_date TEXT NOT NULL DEFAULT '',
			issue TEXT NOT NULL DEFAULT '',
			publication_date TEXT NOT NULL DEFAULT '',
			first_page TEXT NOT NULL DEFAULT '',
			final_page TEXT NOT NULL DEFAULT '',
			subjects TEXT NOT NULL DEFAULT '[]',
			notes TEXT NOT NULL DEFAULT '[]',
			refs TEXT NOT NULL DEFAULT '[]',
			alerts TEXT NOT NULL DEFAULT '[]'
		);

		CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			rank TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL DEFAULT '',
			text_hash TEXT NOT NULL DEFAULT '',
			url_xml TEXT NOT NULL DEFAULT '',
			url_pdf TEXT NOT NULL DEFAULT '',
			disposition_date TEXT NOT NULL DEFAULT '',
			issue TEXT NOT NULL DEFAULT '',
			publication_date TEXT NOT NULL DEFAULT '',
			first_page TEXT NOT NULL DEFAULT '',
			final_page TEXT NOT NULL DEFAULT '',
			subjects TEXT NOT NULL DEFAULT '[]',
			notes TEXT NOT NULL DEFAULT '[]',
			refs TEXT NOT NULL DEFAULT '[]',
			alerts TEXT NOT NULL DEFAULT '[]'
		);

		CREATE INDEX IF NOT EXISTS idx_metadata_date ON metadata(date);
		CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date);
	`

	_, err := db.db.Exec(schema)
	return err
}
