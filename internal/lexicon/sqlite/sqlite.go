package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/lexicon"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS senses (
    word  TEXT    NOT NULL,
    sense INTEGER NOT NULL,
    gloss TEXT    NOT NULL,
    PRIMARY KEY (word, sense)
);
`

// Store is a lexicon backed by a SQLite database of word senses.
type Store struct {
	db *sql.DB
}

// Open opens an existing lexicon database. A missing file is reported as
// domain.ErrResourceUnavailable instead of silently creating an empty one.
func Open(ctx context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("lexicon db %s: %w", path, domain.ErrResourceUnavailable)
		}
		return nil, fmt.Errorf("lexicon db %s: %w", path, err)
	}
	return Create(ctx, path)
}

// Create opens path, creating the database and schema if needed.
func Create(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Define returns the lowest-numbered sense of word.
func (s *Store) Define(ctx context.Context, word string) (string, error) {
	var gloss string
	err := s.db.QueryRowContext(ctx,
		`SELECT gloss FROM senses WHERE word = ? ORDER BY sense LIMIT 1`,
		strings.ToLower(word),
	).Scan(&gloss)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("define %q: %w", word, err)
	}
	return gloss, nil
}

// Upsert writes entries in one transaction. Every word present in entries has
// its previous senses replaced.
func (s *Store) Upsert(ctx context.Context, entries []lexicon.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	cleared := make(map[string]struct{})
	for _, e := range entries {
		if _, ok := cleared[e.Word]; !ok {
			if _, err := tx.ExecContext(ctx, `DELETE FROM senses WHERE word = ?`, e.Word); err != nil {
				return fmt.Errorf("clear %q: %w", e.Word, err)
			}
			cleared[e.Word] = struct{}{}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO senses(word, sense, gloss) VALUES(?,?,?)`,
			e.Word, e.Sense, e.Gloss,
		); err != nil {
			return fmt.Errorf("insert %q: %w", e.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Import loads a TSV glossary into the store and returns the number of
// senses written.
func (s *Store) Import(ctx context.Context, r io.Reader) (int, error) {
	entries, err := lexicon.ParseTSV(r)
	if err != nil {
		return 0, err
	}
	if err := s.Upsert(ctx, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Count returns the number of distinct words in the store.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT word) FROM senses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// Clear removes every sense.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM senses`); err != nil {
		return fmt.Errorf("clear senses: %w", err)
	}
	return nil
}
