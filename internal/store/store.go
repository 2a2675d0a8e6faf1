// ABOUTME: Badger-backed key/value store for persisted collections.
// ABOUTME: Reads fall back to defaults and writes warn instead of failing.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/fatih/color"
)

// Storage keys. Each key holds one JSON-serialized collection or object;
// there is no versioning, so readers must tolerate missing fields.
const (
	KeyLogs              = "gastroLogs"
	KeyHydration         = "hydrationLogs"
	KeyHydrationSettings = "hydrationSettings"
	KeyMedications       = "gastroMeds"
	KeyMealPlan          = "gastroMealPlan"
)

// Store wraps a Badger database holding JSON collections.
type Store struct {
	db *badger.DB

	// warn surfaces non-fatal storage problems to the user.
	warn func(format string, args ...interface{})
}

// Open opens or creates the store in the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &Store{db: db, warn: defaultWarn}, nil
}

// OpenDefault opens the store at the default XDG data path.
func OpenDefault() (*Store, error) {
	return Open(DataDir())
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gastrocare")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SetWarnFunc overrides where storage warnings go. Used by tests.
func (s *Store) SetWarnFunc(warn func(format string, args ...interface{})) {
	s.warn = warn
}

func defaultWarn(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// Get returns the value stored under key, or fallback if the key is absent,
// the stored value is unparseable, or the read fails. It never returns an
// error; a stale default is preferable to a crash for this data.
func Get[T any](s *Store, key string, fallback T) T {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return fallback
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return fallback
	}
	return out
}

// Set serializes and stores value under key. On failure it warns the user
// and returns false; it never raises the error to the caller.
func Set[T any](s *Store, key string, value T) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.warn("could not serialize %s: %v", key, err)
		return false
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		s.warn("could not save %s, your data directory may be full: %v", key, err)
		return false
	}
	return true
}
