// Package store persists each collection as a single JSON array document
// under the data directory. It is a whole-document store: every load reads
// the full collection and every save overwrites it.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Collection names. Each is backed by a <name>.json file.
const (
	Students = "students"
	Tests    = "tests"
	Attempts = "attempts"
)

// Store serializes access per collection: callers performing a
// read-modify-write cycle must hold the collection lock for the whole cycle,
// otherwise concurrent requests can race the check-then-insert invariants.
type Store struct {
	fs  afero.Fs
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir, locks: make(map[string]*sync.Mutex)}
}

// Init creates the data directory and an empty array document for every named
// collection that does not exist yet. Idempotent.
func (s *Store) Init(collections ...string) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", s.dir, err)
	}
	for _, name := range collections {
		exists, err := afero.Exists(s.fs, s.path(name))
		if err != nil {
			return fmt.Errorf("checking collection %s: %w", name, err)
		}
		if exists {
			continue
		}
		if err := afero.WriteFile(s.fs, s.path(name), []byte("[]\n"), 0o644); err != nil {
			return fmt.Errorf("initializing collection %s: %w", name, err)
		}
	}
	return nil
}

// Lock acquires the named collection's mutex and returns its unlock function.
func (s *Store) Lock(name string) func() {
	s.mu.Lock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Load reads the whole collection into out, preserving insertion order.
// Unreadable or malformed documents propagate as errors.
func (s *Store) Load(name string, out any) error {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		return fmt.Errorf("reading collection %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding collection %s: %w", name, err)
	}
	return nil
}

// Save overwrites the collection with docs. The document is written to a
// temporary file and renamed into place so readers never observe a partial
// write.
func (s *Store) Save(name string, docs any) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", name, err)
	}
	tmp := s.path(name) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing collection %s: %w", name, err)
	}
	if err := s.fs.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("replacing collection %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
