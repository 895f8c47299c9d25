package memory

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Kinds of cached outputs. Value and formula requests for the same source
// text are cached independently.
const (
	KindValue   = "value"
	KindFormula = "formula"
)

// Store is a translation memory persisted in a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens the translation memory at path, creating the database and
// its schema when missing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation memory: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// init applies the connection pragmas and creates the schema.
func (s *Store) init() error {
	queries := []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA synchronous = NORMAL`,
		`CREATE TABLE IF NOT EXISTS translations (
			source_text text NOT NULL,
			language text NOT NULL,
			kind text NOT NULL,
			model text NOT NULL,
			output text NOT NULL,
			created_at integer NOT NULL,
			PRIMARY KEY (source_text, language, kind, model)
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to initialize translation memory: %w", err)
		}
	}
	return nil
}

// Lookup returns the cached output for the given key. The second return
// value reports whether an entry exists.
func (s *Store) Lookup(sourceText, language, kind, model string) (string, bool, error) {
	var output string
	err := s.db.QueryRow(
		`SELECT output FROM translations
		 WHERE source_text = ? AND language = ? AND kind = ? AND model = ?`,
		sourceText, language, kind, model,
	).Scan(&output)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query translation memory: %w", err)
	}
	return output, true, nil
}

// Save stores an output, replacing any previous entry under the same key.
func (s *Store) Save(sourceText, language, kind, model, output string) error {
	_, err := s.db.Exec(
		`INSERT INTO translations (source_text, language, kind, model, output, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (source_text, language, kind, model) DO UPDATE SET
			output = excluded.output,
			created_at = excluded.created_at`,
		sourceText, language, kind, model, output, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save to translation memory: %w", err)
	}
	return nil
}

// Count returns the number of cached entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count translation memory entries: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
