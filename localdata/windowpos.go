package localdata

import (
	"log"
	"os"
	"time"

	"classwindow/models"
)

// LoadBounds returns the persisted geometry of every window, keyed by window
// name, cached until the file's mtime changes.
func (s *Store) LoadBounds() map[string]models.WindowBounds {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadBoundsLocked()
}

func (s *Store) loadBoundsLocked() map[string]models.WindowBounds {
	info, err := os.Stat(s.boundsPath())
	if err != nil {
		return map[string]models.WindowBounds{}
	}
	if s.boundsCache != nil && info.ModTime().Equal(s.boundsMtime) {
		return s.boundsCache
	}

	bounds := map[string]models.WindowBounds{}
	if !readJSONFile(s.boundsPath(), &bounds) {
		return map[string]models.WindowBounds{}
	}
	s.boundsCache = bounds
	s.boundsMtime = info.ModTime()
	return bounds
}

// Bounds returns the saved geometry for one window, if any
func (s *Store) Bounds(name string) (models.WindowBounds, bool) {
	b, ok := s.LoadBounds()[name]
	return b, ok
}

// SaveBounds overwrites one window's geometry. Entries are created on first
// move/resize/close and overwritten thereafter.
func (s *Store) SaveBounds(name string, b models.WindowBounds) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bounds := s.loadBoundsLocked()
	bounds[name] = b
	if !s.writeJSONFile(s.boundsPath(), bounds) {
		return
	}
	s.boundsCache = bounds
	if info, err := os.Stat(s.boundsPath()); err == nil {
		s.boundsMtime = info.ModTime()
	}
}

// ClearBounds removes the whole store; there is no per-window deletion path
func (s *Store) ClearBounds() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.boundsPath()); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to clear window positions: %v", err)
		return
	}
	s.boundsCache = nil
	s.boundsMtime = time.Time{}
}
