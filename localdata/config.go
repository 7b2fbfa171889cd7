package localdata

import (
	"os"
	"time"
)

// LoadConfig returns the config document. Results are cached until the file's
// mtime changes; a missing or broken file yields an empty document.
func (s *Store) LoadConfig() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadConfigLocked()
}

func (s *Store) loadConfigLocked() map[string]any {
	info, err := os.Stat(s.configPath())
	if err != nil {
		return map[string]any{}
	}
	if s.configCache != nil && info.ModTime().Equal(s.configMtime) {
		return s.configCache
	}

	cfg := map[string]any{}
	if !readJSONFile(s.configPath(), &cfg) {
		return map[string]any{}
	}
	s.configCache = cfg
	s.configMtime = info.ModTime()
	return cfg
}

// SaveConfig rewrites the config document, stamping a timestamp field as a
// last-write marker.
func (s *Store) SaveConfig(cfg map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveConfigLocked(cfg)
}

func (s *Store) saveConfigLocked(cfg map[string]any) {
	cfg["timestamp"] = time.Now().UnixMilli()
	if !s.writeJSONFile(s.configPath(), cfg) {
		return
	}
	s.configCache = cfg
	if info, err := os.Stat(s.configPath()); err == nil {
		s.configMtime = info.ModTime()
	}
}

// Setting is a named boolean feature toggle inside the config document
type Setting struct {
	name  string
	store *Store
}

func (s *Store) Setting(name string) Setting {
	return Setting{name: name, store: s}
}

// Load returns the toggle value, defaulting to enabled when unset
func (st Setting) Load() bool {
	return st.LoadDefault(true)
}

func (st Setting) LoadDefault(def bool) bool {
	cfg := st.store.LoadConfig()
	if v, ok := cfg[st.name].(bool); ok {
		return v
	}
	return def
}

func (st Setting) Save(enabled bool) {
	st.store.mu.Lock()
	defer st.store.mu.Unlock()
	cfg := st.store.loadConfigLocked()
	cfg[st.name] = enabled
	st.store.saveConfigLocked(cfg)
}
