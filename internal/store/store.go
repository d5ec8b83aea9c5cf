// Package store persists the ordered fact-check dataset as a single JSON
// file. The file layout is an interchange format: import and export must
// round-trip it byte-compatibly with external tooling.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/factdesk/factdesk/internal/model"
	"github.com/factdesk/factdesk/internal/serialize"
)

// Store owns the dataset file. All access is serialized through one mutex:
// the dataset is small and save rewrites the whole file anyway.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the dataset. A missing or empty file yields an empty dataset,
// not an error. Loaded entries are backfilled with defaults so that records
// written by older revisions of the format stay usable.
func (s *Store) Load() ([]model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]model.Entry, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		zap.S().Infof("data file %q not found, starting with empty dataset", s.path)
		return []model.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	if len(raw) == 0 {
		return []model.Entry{}, nil
	}

	var entries []model.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode data file %q: %w", s.path, err)
	}

	for i := range entries {
		applyDefaults(&entries[i])
	}

	zap.S().Debugf("loaded %d entries from %q", len(entries), s.path)
	return entries, nil
}

// applyDefaults fills structure that older records may lack.
func applyDefaults(e *model.Entry) {
	if e.ExternalLinks == nil {
		e.ExternalLinks = []model.EvidenceLink{}
	}
	for i := range e.ExternalLinks {
		e.ExternalLinks[i].Checklist = model.NormalizeChecklist(e.ExternalLinks[i].Checklist)
	}
	if !e.Rating.IsValid() {
		e.Rating = ""
	}
}

// Save normalizes and persists the dataset, replacing whatever was stored
// before. IDs are reassigned densely by position; the normalized dataset is
// returned so callers can echo the stored state.
func (s *Store) Save(entries []model.Entry) ([]model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := serialize.Normalize(entries)
	if err := s.write(normalized); err != nil {
		return nil, err
	}
	zap.S().Infof("saved %d entries to %q", len(normalized), s.path)
	return normalized, nil
}

func (s *Store) write(entries []model.Entry) error {
	raw, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".factdesk-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// Import parses an uploaded JSON document and replaces the dataset with it.
// The payload must be a JSON array of entry objects. Returns the number of
// imported entries.
func (s *Store) Import(raw []byte) (int, error) {
	var entries []model.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("invalid JSON: %w", err)
	}
	for i := range entries {
		applyDefaults(&entries[i])
	}
	saved, err := s.Save(entries)
	if err != nil {
		return 0, err
	}
	return len(saved), nil
}

// Export returns the current dataset serialized in the interchange format.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	raw, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return raw, nil
}
