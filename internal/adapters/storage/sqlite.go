package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

// SQLiteFile is the database file name inside the store directory.
const SQLiteFile = "share-log.db"

const createTableSQL = `
CREATE TABLE IF NOT EXISTS share_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp    TEXT NOT NULL,
	shared_title TEXT,
	shared_text  TEXT,
	shared_url   TEXT,
	final_title  TEXT NOT NULL,
	final_url    TEXT NOT NULL
)`

// SQLiteStore keeps the share log in a SQLite table, trimmed to capacity on
// every append inside the same transaction.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	capacity int
}

// OpenSQLiteStore opens or creates the database in dir.
func OpenSQLiteStore(ctx context.Context, dir string, capacity int) (*SQLiteStore, error) {
	if dir == "" {
		return nil, domain.NewValidationError("store.path", "directory is required")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	path := filepath.Join(dir, SQLiteFile)

	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One writer; the log is tiny.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating share_log table: %w", err)
	}

	return &SQLiteStore{db: db, path: path, capacity: normalizeCapacity(capacity)}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

// Append implements ports.ShareLogStore.
func (s *SQLiteStore) Append(ctx context.Context, entry domain.LogEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("beginning transaction: %w", err))
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx,
		`INSERT INTO share_log (timestamp, shared_title, shared_text, shared_url, final_title, final_url)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Timestamp,
		nullString(entry.SharedTitle),
		nullString(entry.SharedText),
		nullString(entry.SharedURL),
		entry.FinalTitle,
		entry.FinalURL,
	)
	if err != nil {
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("inserting log entry: %w", err))
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM share_log WHERE id NOT IN (
			SELECT id FROM share_log ORDER BY id DESC LIMIT ?
		)`, s.capacity)
	if err != nil {
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("trimming log: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("committing log entry: %w", err))
	}

	return nil
}

// List implements ports.ShareLogStore.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.LogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT timestamp, shared_title, shared_text, shared_url, final_title, final_url
		 FROM share_log ORDER BY id ASC`)
	if err != nil {
		return nil, domain.WrapUnavailable(ServiceName, fmt.Errorf("querying log: %w", err))
	}
	defer rows.Close()

	entries := make([]domain.LogEntry, 0, s.capacity)

	for rows.Next() {
		var e domain.LogEntry
		var title, text, link sql.NullString

		if err := rows.Scan(&e.Timestamp, &title, &text, &link, &e.FinalTitle, &e.FinalURL); err != nil {
			return nil, domain.WrapUnavailable(ServiceName, fmt.Errorf("scanning log entry: %w", err))
		}

		e.SharedTitle = stringPtr(title)
		e.SharedText = stringPtr(text)
		e.SharedURL = stringPtr(link)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.WrapUnavailable(ServiceName, fmt.Errorf("iterating log: %w", err))
	}

	return entries, nil
}

// Clear implements ports.ShareLogStore.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM share_log"); err != nil {
		return domain.WrapUnavailable(ServiceName, fmt.Errorf("clearing log: %w", err))
	}

	return nil
}

// Capacity implements ports.ShareLogStore.
func (s *SQLiteStore) Capacity() int { return s.capacity }

// Name implements ports.HealthChecker.
func (s *SQLiteStore) Name() string { return ServiceName }

// Check implements ports.HealthChecker.
func (s *SQLiteStore) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close implements io.Closer.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}

	s := ns.String

	return &s
}
