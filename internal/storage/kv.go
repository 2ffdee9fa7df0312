package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// KV is the durable key/value store backing the planner. It is the
// local-storage equivalent: namespaced string keys holding serialized
// JSON values.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

type kvStore struct {
	db *sql.DB
}

// Open creates the data directory if needed and opens (or creates) the
// sqlite database holding the key/value table.
func Open(dataDir string) (KV, error) {
	if dataDir == "" {
		dataDir = "./data"
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "planner.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &kvStore{db: db}, nil
}

func (s *kvStore) Get(key string) (string, bool, error) {
	query := `SELECT value FROM kv_entries WHERE key = ?`

	var value string
	err := s.db.QueryRow(query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		slog.Info(err.Error())
		return "", false, err
	}

	return value, true, nil
}

func (s *kvStore) Set(key, value string) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	_, err := s.db.Exec(query, key, value)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (s *kvStore) Delete(key string) error {
	query := `DELETE FROM kv_entries WHERE key = ?`
	_, err := s.db.Exec(query, key)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (s *kvStore) Close() error {
	return s.db.Close()
}
