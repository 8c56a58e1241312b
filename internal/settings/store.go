package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
)

// Store provides thread-safe access to a JSON settings document. Values are
// arbitrary JSON-encodable data; unknown keys simply return the caller's
// fallback.
type Store struct {
	path string
	lock *flock.Flock

	mu     sync.Mutex
	values map[string]any
}

// Open loads the settings document at path, creating parent directories as
// needed. A missing file yields an empty store; the file is created on the
// first Set.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("settings path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}
	s := &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		values: make(map[string]any),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path exposes the backing file for inspection.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key, or fallback when absent.
func (s *Store) Get(key string, fallback any) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value, ok := s.values[key]; ok {
		return value
	}
	return fallback
}

// Set stores value under key and persists the document.
func (s *Store) Set(key string, value any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("setting key cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	if err := s.save(); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// Keys returns the stored keys in unspecified order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	return keys
}

func (s *Store) load() error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock settings file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // fresh start
		}
		return fmt.Errorf("read settings file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("parse settings file: %w", err)
	}
	return nil
}

// save writes the document atomically while holding the cross-process lock.
// Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock settings file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
