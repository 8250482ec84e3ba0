// Package store persists the whole dashboard state as a single JSON document
// on disk: {"users": [...], "complaints": [...]}. Reads serve the
// last-committed in-memory snapshot; every mutation rewrites the file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"evcharge-dashboard-server/internal/models"
)

// ErrPersist marks a failed write of the backing file. Callers map it to a
// generic server error; the in-memory state is left at the previous commit.
var ErrPersist = errors.New("persist document")

type Document struct {
	Users      []models.User      `json:"users"`
	Complaints []models.Complaint `json:"complaints"`
}

type Store struct {
	path string

	mu  sync.RWMutex
	doc *Document
}

// Open loads the document at path. A missing file or undecodable content is
// not fatal: the store starts from empty defaults and the next mutation
// rewrites the file.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	s := &Store{path: path, doc: &Document{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s, nil
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return s, nil
	}

	s.doc = &doc
	return s, nil
}

// Path reports the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns the last-committed document. The returned value is shared
// and must be treated as read-only; mutations go through Update.
func (s *Store) Snapshot() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Update serializes all mutations: it clones the current document, applies fn
// to the clone, persists the clone, and only then swaps it in. If fn or the
// write fails, neither memory nor disk changes.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.clone()
	if err := fn(next); err != nil {
		return err
	}

	if err := s.persist(next); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	s.doc = next
	return nil
}

// persist writes the document wholesale via a temp file and rename, so a
// crash mid-write cannot leave a truncated database behind.
func (s *Store) persist(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (d *Document) clone() *Document {
	next := &Document{
		Users:      make([]models.User, len(d.Users)),
		Complaints: make([]models.Complaint, len(d.Complaints)),
	}
	copy(next.Users, d.Users)
	copy(next.Complaints, d.Complaints)
	return next
}
