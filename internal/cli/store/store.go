package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Fixed record names used by the session store. TokenKey duplicates the raw
// bearer token next to the whole-state snapshot so it can be read on its own
// when building request authorization headers.
const (
	SessionKey = "auth-storage"
	TokenKey   = "insightly_token"
)

// KV is the durable client storage: a single SQLite file holding named
// records, the closest analog of the browser's localStorage.
type KV struct {
	db *sql.DB
}

// Open opens (and creates if needed) the SQLite DB file at path.
// The parent directory is created with 0700.
func Open(path string) (*KV, error) {
	if path == "" {
		return nil, errors.New("empty client db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &KV{db: db}, nil
}

// Close closes the underlying DB.
func (s *KV) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate ensures the single required table exists.
func (s *KV) Migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  name TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`
	_, err := s.db.Exec(ddl)
	return err
}

// Get returns the record stored under name. The second result is false when
// no record exists.
func (s *KV) Get(name string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores value under name, replacing any previous record.
func (s *KV) Set(name string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv(name, value) VALUES(?, ?)
        ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, value)
	return err
}

// Delete removes the record stored under name. Deleting a missing record is
// not an error.
func (s *KV) Delete(name string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE name = ?`, name)
	return err
}
