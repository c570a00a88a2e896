package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/spigell/resume-scout/internal/jobs"
)

// Store remembers postings already shown to the user, keyed by title and company.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Entry is a remembered posting.
type Entry struct {
	Key     string
	Title   string
	Company string
	URL     string
	SeenAt  time.Time
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("history: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: init schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS seen (
		key     TEXT PRIMARY KEY,
		title   TEXT NOT NULL,
		company TEXT NOT NULL,
		url     TEXT,
		seen_at TEXT NOT NULL
	)`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// MarkSeen records postings. Postings seen before get a fresh timestamp.
func (s *Store) MarkSeen(ctx context.Context, postings []*jobs.Posting) error {
	if len(postings) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history: begin: %w", err)
	}
	defer tx.Rollback()

	now := s.now().UTC().Format(time.RFC3339)
	for _, p := range postings {
		if p == nil {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO seen (key, title, company, url, seen_at) VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET url = excluded.url, seen_at = excluded.seen_at`,
			p.Key(), p.Title, p.Company, p.URL, now,
		)
		if err != nil {
			return fmt.Errorf("history: insert %s: %w", p.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history: commit: %w", err)
	}
	return nil
}

// SeenKeys returns keys of every remembered posting.
func (s *Store) SeenKeys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM seen ORDER BY seen_at, key`)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// List returns remembered postings, most recent first. A non-positive limit returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT key, title, company, url, seen_at FROM seen ORDER BY seen_at DESC, key`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			url    sql.NullString
			seenAt string
		)
		if err := rows.Scan(&e.Key, &e.Title, &e.Company, &url, &seenAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.URL = url.String
		e.SeenAt, _ = time.Parse(time.RFC3339, seenAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
