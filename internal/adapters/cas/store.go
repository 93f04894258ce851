// Package cas implements the build record store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFileName is the store file inside domain.StateDir.
const DefaultFileName = "builds.json"

var _ ports.BuildRecordStore = (*Store)(nil)

// Store implements ports.BuildRecordStore using a flat JSON file keyed by target.
// The file is read on first use, so commands that never touch build records
// are unaffected by its contents.
type Store struct {
	path   string
	mu     sync.Mutex
	loaded bool
	cache  map[string]domain.BuildRecord
}

// NewStore creates a new BuildRecordStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// load must be called with s.mu held. A failed load is retried on the next call.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to read build record store"), "path", s.path)
	}

	var records map[string]domain.BuildRecord
	if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to unmarshal build record store"), "path", s.path)
		}
	}
	// A file holding null decodes to a nil map.
	if records == nil {
		records = make(map[string]domain.BuildRecord)
	}

	s.cache = records
	s.loaded = true
	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build record store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for build record store"), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write build record store"), "path", s.path)
	}

	return nil
}

// Get retrieves the record for a target.
func (s *Store) Get(target string) (*domain.BuildRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	record, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and writes the store to disk. An unreadable store is
// left untouched.
func (s *Store) Put(record domain.BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	s.cache[record.Target] = record
	return s.save()
}
