// Package localdata manages the desktop client's JSON files: config.json,
// window-position.json, homework.json and templates.json, one file per
// concern. Reads never fail the caller: a missing or unreadable file yields
// an empty value and a log line, matching how the widget UI tolerates a
// broken data directory.
package localdata

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"classwindow/models"
)

// Store is the desktop-side data directory. Config and window positions are
// cached read-through and invalidated by file mtime, so edits made by another
// process are picked up without rereading on every access.
type Store struct {
	dir string

	mu          sync.Mutex
	configCache map[string]any
	configMtime time.Time
	boundsCache map[string]models.WindowBounds
	boundsMtime time.Time
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) configPath() string   { return filepath.Join(s.dir, "config.json") }
func (s *Store) boundsPath() string   { return filepath.Join(s.dir, "window-position.json") }
func (s *Store) homeworkPath() string { return filepath.Join(s.dir, "homework.json") }
func (s *Store) templatePath() string { return filepath.Join(s.dir, "templates.json") }

func (s *Store) ensureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

func readJSONFile(path string, out any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read %s: %v", filepath.Base(path), err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Failed to parse %s: %v", filepath.Base(path), err)
		return false
	}
	return true
}

func (s *Store) writeJSONFile(path string, v any) bool {
	if err := s.ensureDir(); err != nil {
		log.Printf("Failed to create data directory: %v", err)
		return false
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Failed to encode %s: %v", filepath.Base(path), err)
		return false
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("Failed to write %s: %v", filepath.Base(path), err)
		return false
	}
	return true
}
