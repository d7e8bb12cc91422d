package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/model"
)

// FileStore keeps the gig collection in a single JSON document on disk.
// Every operation is a whole-document read-modify-write guarded by one
// mutex, so interleaved writers cannot silently drop each other's updates.
// Writes go through a temp file and rename to stay atomic on crash.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the JSON document at path. The
// file itself is not created here; a missing document surfaces as
// ErrStoreUnavailable until the seed tool (or Reset) writes one.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadAll returns the full collection, newest first.
func (s *FileStore) LoadAll(ctx context.Context) ([]model.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Gigs, nil
}

// GetByID returns the gig with the given id.
func (s *FileStore) GetByID(ctx context.Context, id string) (*model.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Gigs {
		if doc.Gigs[i].ID == id {
			gig := doc.Gigs[i]
			return &gig, nil
		}
	}
	return nil, apperrors.ErrGigNotFound
}

// Insert prepends the gig and persists the whole collection.
func (s *FileStore) Insert(ctx context.Context, gig *model.Gig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Gigs = append([]model.Gig{*gig}, doc.Gigs...)
	return s.write(doc)
}

// UpdateByID merges the partial update onto the stored record and persists
// the whole collection. Named fields are replaced, not deep-merged.
func (s *FileStore) UpdateByID(ctx context.Context, id string, update model.GigUpdate) (*model.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Gigs {
		if doc.Gigs[i].ID != id {
			continue
		}
		update.Apply(&doc.Gigs[i])
		if err := s.write(doc); err != nil {
			return nil, err
		}
		gig := doc.Gigs[i]
		return &gig, nil
	}
	return nil, apperrors.ErrGigNotFound
}

// Reset overwrites the document with the given collection.
func (s *FileStore) Reset(ctx context.Context, gigs []model.Gig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gigs == nil {
		gigs = []model.Gig{}
	}
	return s.write(&Document{Gigs: gigs})
}

func (s *FileStore) read() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperrors.ErrStoreUnavailable, s.path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", apperrors.ErrStoreUnavailable, s.path, err)
	}
	return &doc, nil
}

func (s *FileStore) write(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode document: %v", apperrors.ErrStoreUnavailable, err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", apperrors.ErrStoreUnavailable, dir, err)
	}
	tmp, err := os.CreateTemp(dir, "gigs-*.json")
	if err != nil {
		return fmt.Errorf("%w: temp file: %v", apperrors.ErrStoreUnavailable, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write document: %v", apperrors.ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close document: %v", apperrors.ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replace %s: %v", apperrors.ErrStoreUnavailable, s.path, err)
	}
	return nil
}
