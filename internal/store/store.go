// Package store provides the persistent string-keyed store that survives
// restarts. It is the only durability layer in the app: the session manager
// keeps the current user under KeyUser and the order materializer keeps the
// order history under KeyOrders. Values are JSON documents; the store itself
// only sees strings. Last write wins, single writer assumed.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/matthieukhl/storefront/internal/config"
)

// Persisted keys
const (
	KeyUser   = "user"
	KeyOrders = "orders"
)

// KV is the narrow store interface components depend on
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store is a KV backed by an embedded sqlite database file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store file and ensures the schema exists
func Open(cfg *config.StoreConfig) (*Store, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// The store is single-writer; one connection avoids sqlite lock churn.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(SchemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure store schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the value for key and whether the key exists
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value for key, replacing any previous value
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// HealthCheck performs a simple health check on the store
func (s *Store) HealthCheck() error {
	return s.db.Ping()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
