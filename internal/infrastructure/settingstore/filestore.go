package settingstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"helpdesk/internal/domain/setting"
	"helpdesk/internal/shared/logger"
)

var _ setting.Store = (*FileStore)(nil)

// FileStore persists the settings document as a single JSON file. All
// access goes through one mutex so concurrent updates cannot interleave
// a read-modify-write.
type FileStore struct {
	path   string
	logger logger.Interface

	mu  sync.RWMutex
	doc *setting.Document
}

// NewFileStore loads the document at path, writing the defaults on
// first run.
func NewFileStore(path string, log logger.Interface) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		logger: log,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
		s.doc = setting.Default()
		if err := s.writeLocked(); err != nil {
			return nil, err
		}
		log.Infow("settings file created with defaults", "path", path)
		return s, nil
	}

	doc := setting.Default()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if doc.Register.EmailWhitelist == nil {
		doc.Register.EmailWhitelist = []string{}
	}
	s.doc = doc

	return s, nil
}

// Load returns a copy of the current document.
func (s *FileStore) Load(ctx context.Context) (*setting.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyLocked(), nil
}

// Save replaces the document and writes it to disk.
func (s *FileStore) Save(ctx context.Context, doc *setting.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *doc
	s.doc = &c
	return s.writeLocked()
}

// UpdateFn applies fn to the document under the writer lock and persists
// the result, returning the updated copy.
func (s *FileStore) UpdateFn(ctx context.Context, fn func(doc *setting.Document) error) (*setting.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.copyLocked()
	if err := fn(working); err != nil {
		return nil, err
	}

	s.doc = working
	if err := s.writeLocked(); err != nil {
		return nil, err
	}

	return s.copyLocked(), nil
}

func (s *FileStore) copyLocked() *setting.Document {
	c := *s.doc
	if s.doc.Register.EmailWhitelist != nil {
		c.Register.EmailWhitelist = append([]string(nil), s.doc.Register.EmailWhitelist...)
	}
	return &c
}

// writeLocked writes to a temp file in the same directory and renames it
// over the target, so readers never see a partial document.
func (s *FileStore) writeLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp settings file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	return nil
}
