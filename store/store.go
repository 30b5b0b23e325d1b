// ABOUTME: File-backed credential store persisting the full account collection as JSON
// ABOUTME: The file on disk is the source of truth; every load re-reads it wholesale

package store

import (
	"encoding/json"
	"log/slog"
	"os"

	"golang.org/x/sync/singleflight"

	"github.com/greenloop/ewaste-portal/models"
)

// FileStore persists accounts as a single JSON document rewritten wholesale on
// every save. It holds no in-memory state between calls, so external writers
// to the same file are tolerated (their changes are picked up on the next load).
type FileStore struct {
	path  string
	group singleflight.Group
}

// New creates a FileStore backed by the file at path. The file does not need
// to exist yet; a missing file reads as an empty collection.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted account collection. A missing file is the first-run
// case and yields an empty slice; unreadable or corrupt data is logged and also
// yields an empty slice rather than an error, so callers never crash on a bad
// store.
//
// Concurrent loads are coalesced with singleflight so a burst of auth requests
// reads the file once.
func (s *FileStore) Load() []models.Account {
	v, _, _ := s.group.Do("load", func() (interface{}, error) {
		return s.read(), nil
	})
	return v.([]models.Account)
}

func (s *FileStore) read() []models.Account {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Account{}
		}
		slog.Error("Failed to read credential store, treating as empty", "path", s.path, "error", err)
		return []models.Account{}
	}

	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		slog.Error("Credential store is corrupt, treating as empty", "path", s.path, "error", err)
		return []models.Account{}
	}

	return accounts
}

// Save serializes the full account collection and overwrites the backing file.
// Load-check-append-save around registration is not atomic; two concurrent
// registrations can race. Acceptable for this system's scope.
func (s *FileStore) Save(accounts []models.Account) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return err
	}

	// 0600: the file holds password hashes
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		slog.Error("Failed to write credential store", "path", s.path, "error", err)
		return err
	}

	return nil
}
