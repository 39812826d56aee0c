package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ledger/internal/journal"
	applog "ledger/internal/log"

	_ "modernc.org/sqlite"
)

// SQLiteJournal appends journal entries to a SQLite database.
type SQLiteJournal struct {
	db *sql.DB
}

// NewSQLiteJournal opens (creating if needed) the database at dbPath and
// applies migrations.
func NewSQLiteJournal(dbPath string) (*SQLiteJournal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

// ErrNoJournal is returned by OpenExistingJournal when no database exists.
var ErrNoJournal = errors.New("no journal")

// OpenExistingJournal opens the database at dbPath for reading. Unlike
// NewSQLiteJournal it never creates the file or its directory.
func OpenExistingJournal(dbPath string) (*SQLiteJournal, error) {
	info, err := os.Stat(dbPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrNoJournal, dbPath)
	}
	if err != nil {
		return nil, fmt.Errorf("stat journal: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("journal path %s is a directory", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &SQLiteJournal{db: db}, nil
}

func (r *SQLiteJournal) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

const insertEntry = `INSERT INTO journal_entries
	(verb, line, success, error_kind, error, size, history, recorded_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// Record implements journal.Recorder
func (r *SQLiteJournal) Record(ctx context.Context, e journal.Entry) error {
	res, err := r.db.ExecContext(ctx, insertEntry,
		e.Verb, e.Line, e.Success, e.ErrorKind, e.Error, e.Size, e.History,
		e.At.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}

	id, _ := res.LastInsertId()
	applog.FromContext(ctx).WithComponent(applog.ComponentStorage).DebugContext(ctx, "Journal entry saved to SQLite",
		"id", id,
		applog.FieldVerb, e.Verb,
		applog.FieldSuccess, e.Success)
	return nil
}

const selectRecent = `SELECT verb, line, success, error_kind, error, size, history, recorded_at
	FROM journal_entries
	ORDER BY id DESC
	LIMIT ?`

// Recent returns up to limit entries, oldest first.
func (r *SQLiteJournal) Recent(ctx context.Context, limit int) ([]journal.Entry, error) {
	if limit < 1 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, selectRecent, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []journal.Entry
	for rows.Next() {
		var (
			e  journal.Entry
			at string
		)
		if err := rows.Scan(&e.Verb, &e.Line, &e.Success, &e.ErrorKind, &e.Error, &e.Size, &e.History, &at); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		if e.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("parse journal timestamp %q: %w", at, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}

	// Rows come newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (r *SQLiteJournal) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count journal entries: %w", err)
	}
	return n, nil
}
