// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dictionary

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Store is a caching [WordSource] for long-running processes. It loads the
// word list from a file once and serves it from memory; [Store.Reload]
// re-reads the file only when its modification time changed. Safe for
// concurrent use.
type Store struct {
	path string

	mu      sync.RWMutex
	words   []string
	modTime time.Time
}

// NewStore loads the word list from the file at path and returns a caching
// source over it. Fails with [ErrDictionaryUnavailable] when the file cannot
// be read.
func NewStore(path string) (*Store, error) {
	store := &Store{path: path}
	if _, err := store.Reload(); err != nil {
		return nil, err
	}

	return store, nil
}

// Words implements [WordSource] from the in-memory cache.
func (s *Store) Words() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.words, nil
}

// Reload re-reads the backing file when its modification time changed since
// the last load. It reports whether a reload actually happened. The cached
// word list stays untouched when the re-read fails.
func (s *Store) Reload() (bool, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrDictionaryUnavailable, s.path, err)
	}

	s.mu.RLock()
	unchanged := s.words != nil && info.ModTime().Equal(s.modTime)
	s.mu.RUnlock()
	if unchanged {
		return false, nil
	}

	words, err := NewFileSource(s.path).Words()
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	s.words = words
	s.modTime = info.ModTime()
	s.mu.Unlock()

	return true, nil
}
