package localdata

import (
	"encoding/json"

	"classwindow/models"
)

// Launcher starts the target of a launchpad entry. The actual shell and
// process APIs live behind this interface.
type Launcher interface {
	OpenExternal(url string) error
	ExecFile(path string) error
}

// LaunchpadApps returns the pinned apps stored under the launchpadApps key of
// the config document.
func (s *Store) LaunchpadApps() []models.LaunchpadApp {
	return decodeApps(s.LoadConfig()["launchpadApps"])
}

// AddLaunchpadApp appends an app, defaulting its type to "app"
func (s *Store) AddLaunchpadApp(app models.LaunchpadApp) []models.LaunchpadApp {
	if app.Type == "" {
		app.Type = "app"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.loadConfigLocked()
	apps := append(decodeApps(cfg["launchpadApps"]), app)
	cfg["launchpadApps"] = apps
	s.saveConfigLocked(cfg)
	return apps
}

// RemoveLaunchpadApp removes by index; out-of-range indices return nil so
// callers can tell nothing changed.
func (s *Store) RemoveLaunchpadApp(index int) []models.LaunchpadApp {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.loadConfigLocked()
	apps := decodeApps(cfg["launchpadApps"])
	if index < 0 || index >= len(apps) {
		return nil
	}
	apps = append(apps[:index], apps[index+1:]...)
	cfg["launchpadApps"] = apps
	s.saveConfigLocked(cfg)
	return apps
}

// Launch opens a link entry in the system browser and executes anything else
func Launch(l Launcher, app models.LaunchpadApp) error {
	if app.Type == "link" {
		return l.OpenExternal(app.Path)
	}
	return l.ExecFile(app.Path)
}

// decodeApps tolerates both typed slices (fresh saves) and the generic maps
// that come back when the config file is reloaded from disk.
func decodeApps(v any) []models.LaunchpadApp {
	switch apps := v.(type) {
	case nil:
		return []models.LaunchpadApp{}
	case []models.LaunchpadApp:
		return apps
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return []models.LaunchpadApp{}
		}
		var out []models.LaunchpadApp
		if err := json.Unmarshal(data, &out); err != nil || out == nil {
			return []models.LaunchpadApp{}
		}
		return out
	}
}
