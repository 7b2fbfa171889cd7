package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"classwindow/models"
)

// Lookup failures, surfaced to the transport layer as-is
var (
	ErrSchoolNotFound = errors.New("school not found")
	ErrClassNotFound  = errors.New("class not found")
)

// Store persists the whole SchoolDocument as one pretty-printed JSON file.
// Every mutation is a full read-modify-write of the document; there is no
// file locking, so concurrent writers race last-write-wins. That matches the
// behavior of the system this replaces and is acceptable at its scale.
type Store struct {
	path string
}

// New prepares the data directory and the schools file, initializing the
// document to {} when it does not exist yet.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	s := &Store{path: filepath.Join(dir, "schools.json")}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.WriteFile(s.path, []byte("{}"), 0o644); err != nil {
			return nil, fmt.Errorf("initializing schools file: %w", err)
		}
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the schools file
func (s *Store) Path() string {
	return s.path
}

// Load reads the full document into memory
func (s *Store) Load() (models.SchoolDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading schools file: %w", err)
	}
	var doc models.SchoolDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schools file: %w", err)
	}
	if doc == nil {
		doc = models.SchoolDocument{}
	}
	return doc, nil
}

// Save rewrites the full document
func (s *Store) Save(doc models.SchoolDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schools file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing schools file: %w", err)
	}
	return nil
}

// Get loads the document and resolves one class record
func (s *Store) Get(schoolCode, classCode string) (*models.ClassRecord, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return Class(doc, schoolCode, classCode)
}

// Mutate runs fn against a freshly loaded document and saves the result when
// fn succeeds. Errors from fn abort the save and are returned unchanged.
func (s *Store) Mutate(fn func(doc models.SchoolDocument) error) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.Save(doc)
}

// Class resolves a class record inside an already loaded document
func Class(doc models.SchoolDocument, schoolCode, classCode string) (*models.ClassRecord, error) {
	school, ok := doc[schoolCode]
	if !ok {
		return nil, ErrSchoolNotFound
	}
	cls, ok := school.Classes[classCode]
	if !ok {
		return nil, ErrClassNotFound
	}
	return cls, nil
}
