// Package store persists named collections as JSON documents on disk,
// one file per collection. Every mutation rewrites the whole document;
// writers to the same collection are serialized by a per-name lock so a
// load-mutate-save cycle can never drop a concurrent update. Reads
// decode a fresh copy from the last fully-written snapshot, so callers
// never share mutable state.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	apperrors "github.com/xyz-asif/voluntra/pkg/errors"
)

// Store owns a data directory. One logical document lives at
// <dir>/<name>.json for each collection name.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

// Open prepares a store rooted at dir, creating the directory if needed.
// Safe to call repeatedly on the same path.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: data directory is required", apperrors.ErrStorage)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", apperrors.ErrStorage, err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.RWMutex),
	}, nil
}

// lock returns the RWMutex guarding the named document.
func (s *Store) lock(name string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[name]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[name] = l
	}
	return l
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// writeDocument writes the document atomically: marshal, write to a temp
// file in the same directory, then rename over the target. A concurrent
// reader sees either the old snapshot or the new one, never a partial write.
// Caller must hold the write lock for name.
func (s *Store) writeDocument(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", apperrors.ErrStorage, name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file for %s: %v", apperrors.ErrStorage, name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrStorage, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file for %s: %v", apperrors.ErrStorage, name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", apperrors.ErrStorage, name, err)
	}
	return nil
}

// Collection is a typed view over one named document.
type Collection[T any] struct {
	store *Store
	name  string
	seed  func() T
}

// NewCollection binds a collection name to its record type. seed supplies
// the default contents used when the document does not exist yet or
// cannot be decoded.
func NewCollection[T any](s *Store, name string, seed func() T) *Collection[T] {
	return &Collection[T]{store: s, name: name, seed: seed}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Load returns the persisted collection. A missing document is seeded
// with the default, persisted, and returned. A document that exists but
// fails to decode is left untouched on disk; the condition is logged and
// the default is returned so the caller can keep serving. Load never
// returns a storage error to the caller.
func (c *Collection[T]) Load(ctx context.Context) (T, error) {
	if err := ctx.Err(); err != nil {
		return c.seed(), err
	}

	l := c.store.lock(c.name)
	l.RLock()
	data, err := os.ReadFile(c.store.path(c.name))
	l.RUnlock()

	if err != nil {
		if os.IsNotExist(err) {
			return c.seedDocument()
		}
		log.Error().Err(err).Str("collection", c.name).Msg("store: read failed, serving default")
		return c.seed(), nil
	}

	value := c.seed()
	if err := json.Unmarshal(data, &value); err != nil {
		// Non-destructive fallback: the corrupt file stays on disk for
		// inspection, the caller gets the default.
		log.Warn().Err(err).Str("collection", c.name).Msg("store: malformed document, serving default")
		return c.seed(), nil
	}
	return value, nil
}

// seedDocument persists the default contents for a collection that has
// never been written, then returns them.
func (c *Collection[T]) seedDocument() (T, error) {
	l := c.store.lock(c.name)
	l.Lock()
	defer l.Unlock()

	// Another writer may have created the document while we waited.
	if data, err := os.ReadFile(c.store.path(c.name)); err == nil {
		value := c.seed()
		if err := json.Unmarshal(data, &value); err == nil {
			return value, nil
		}
		return c.seed(), nil
	}

	value := c.seed()
	if err := c.store.writeDocument(c.name, value); err != nil {
		log.Error().Err(err).Str("collection", c.name).Msg("store: failed to seed document")
	}
	return value, nil
}

// Save replaces the whole document. The write either completes or fails
// as a unit; cancellation is honored only before the write begins.
func (c *Collection[T]) Save(ctx context.Context, value T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := c.store.lock(c.name)
	l.Lock()
	defer l.Unlock()

	return c.store.writeDocument(c.name, value)
}

// Update runs a load-mutate-save cycle while holding the collection's
// write lock, so concurrent updates to the same collection can never
// overwrite each other. fn receives the current contents and returns the
// replacement; returning an error aborts without writing.
func (c *Collection[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	l := c.store.lock(c.name)
	l.Lock()
	defer l.Unlock()

	value := c.seed()
	data, err := os.ReadFile(c.store.path(c.name))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &value); err != nil {
			log.Warn().Err(err).Str("collection", c.name).Msg("store: malformed document, updating from default")
			value = c.seed()
		}
	case os.IsNotExist(err):
		// First write seeds the document through fn.
	default:
		return zero, fmt.Errorf("%w: read %s: %v", apperrors.ErrStorage, c.name, err)
	}

	updated, err := fn(value)
	if err != nil {
		return zero, err
	}
	if err := c.store.writeDocument(c.name, updated); err != nil {
		return zero, err
	}
	return updated, nil
}
