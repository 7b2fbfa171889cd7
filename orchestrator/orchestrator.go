// Package orchestrator owns the lifecycle of the widget windows: which ones
// exist, where they sit, and how data changes fan out to them. The actual
// windowing backend stays behind the Manager interface so the rest of the
// package is testable without a display.
package orchestrator

import (
	"log"
	"sync"
	"time"

	"classwindow/bus"
	"classwindow/localdata"
	"classwindow/models"
)

// WindowType names one logical window. The value doubles as the key in the
// window-position store, so renaming one orphans its saved bounds.
type WindowType string

const (
	WindowClock       WindowType = "clock"
	WindowHomework    WindowType = "homework"
	WindowLaunchpad   WindowType = "launchpad"
	WindowSettings    WindowType = "settings"
	WindowAddHomework WindowType = "addHomework"
	WindowDetail      WindowType = "detail"
	WindowBigScreen   WindowType = "bigScreen"
	WindowDesigner    WindowType = "designer"
	WindowWelcome     WindowType = "welcome"
	WindowAbout       WindowType = "about"
	WindowAccount     WindowType = "account"
)

// Event names published on the bus. Open windows receive every event and
// filter by name on their side.
const (
	EventClockToggle       = "clock-toggle"
	EventHomeworkToggle    = "homework-toggle"
	EventAlwaysOnTopToggle = "always-on-top-toggle"
	EventDarkThemeToggle   = "dark-theme-toggle"
	EventRefreshHomework   = "refresh-homework-list"
	EventLaunchpadUpdated  = "launchpad-apps-updated"
	EventTemplateSaved     = "template-saved"
	EventTemplateDeleted   = "template-deleted"
	EventSettingsUpdated   = "settings-updated"
)

// Options describes how a window should be created
type Options struct {
	Bounds      models.WindowBounds
	Frame       bool
	Resizable   bool
	Transparent bool
	AlwaysOnTop bool
	SkipTaskbar bool
	Focusable   bool
}

// Callbacks are invoked by the windowing backend as the window changes
type Callbacks struct {
	OnMoved   func(models.WindowBounds)
	OnResized func(models.WindowBounds)
	OnClosed  func()
	OnReady   func()
}

// Window is one live window
type Window interface {
	Focus()
	Close()
	Bounds() models.WindowBounds
	SetAlwaysOnTop(bool)
	Send(name string, payload any)
}

// Manager creates windows and reports the usable screen area
type Manager interface {
	Create(t WindowType, opts Options, cb Callbacks) (Window, error)
	WorkArea() (width, height int)
}

// LoginItems controls whether the app starts with the OS session
type LoginItems interface {
	SetOpenAtLogin(enabled bool) error
}

// Settings is the snapshot pushed to the settings window and to newly
// ready windows.
type Settings struct {
	ClockEnabled    bool `json:"clockEnabled"`
	HomeworkEnabled bool `json:"homeworkEnabled"`
	AlwaysOnTop     bool `json:"alwaysOnTop"`
	DarkTheme       bool `json:"darkTheme"`
	StartupEnabled  bool `json:"startupEnabled"`
}

// Orchestrator tracks open windows and routes data changes to them
type Orchestrator struct {
	wm    Manager
	data  *localdata.Store
	bus   *bus.Bus
	login LoginItems

	mu      sync.Mutex
	windows map[WindowType]Window
}

func New(wm Manager, data *localdata.Store, b *bus.Bus, login LoginItems) *Orchestrator {
	return &Orchestrator{
		wm:      wm,
		data:    data,
		bus:     b,
		login:   login,
		windows: make(map[WindowType]Window),
	}
}

// Startup opens the initial windows: the welcome window on a fresh install,
// otherwise the enabled overlays.
func (o *Orchestrator) Startup() {
	if !o.data.Setting("firstRunComplete").LoadDefault(false) {
		o.Open(WindowWelcome)
		return
	}
	o.openOverlays()
}

// CompleteFirstRun marks onboarding done, closes the welcome window and
// brings up the overlays.
func (o *Orchestrator) CompleteFirstRun() {
	o.data.Setting("firstRunComplete").Save(true)
	o.Close(WindowWelcome)
	o.openOverlays()
}

func (o *Orchestrator) openOverlays() {
	if o.data.Setting("clockEnabled").Load() {
		o.Open(WindowClock)
	}
	if o.data.Setting("homeworkEnabled").Load() {
		o.Open(WindowHomework)
	}
	o.Open(WindowLaunchpad)
}

// Open creates the window, or focuses it if it is already open
func (o *Orchestrator) Open(t WindowType) error {
	o.mu.Lock()
	if win, ok := o.windows[t]; ok {
		o.mu.Unlock()
		win.Focus()
		return nil
	}
	o.mu.Unlock()

	opts := o.optionsFor(t)
	win, err := o.wm.Create(t, opts, Callbacks{
		OnMoved:   func(b models.WindowBounds) { o.data.SaveBounds(string(t), b) },
		OnResized: func(b models.WindowBounds) { o.data.SaveBounds(string(t), b) },
		OnClosed:  func() { o.handleClosed(t) },
		OnReady:   func() { o.pushState(t) },
	})
	if err != nil {
		log.Printf("Failed to create %s window: %v", t, err)
		return err
	}

	o.mu.Lock()
	o.windows[t] = win
	o.mu.Unlock()

	if err := o.bus.Subscribe(subscriberID(t), func(ev bus.Event) {
		win.Send(ev.Name, ev.Payload)
	}); err != nil {
		log.Printf("Failed to subscribe %s window: %v", t, err)
	}
	return nil
}

// Close persists the window's final bounds and tears it down. Closing a
// window that is not open is a no-op.
func (o *Orchestrator) Close(t WindowType) {
	o.mu.Lock()
	win, ok := o.windows[t]
	if ok {
		delete(o.windows, t)
	}
	o.mu.Unlock()
	if !ok {
		return
	}

	o.data.SaveBounds(string(t), win.Bounds())
	if err := o.bus.Unsubscribe(subscriberID(t)); err != nil {
		log.Printf("Failed to unsubscribe %s window: %v", t, err)
	}
	win.Close()
}

// handleClosed cleans up after a window the user closed directly. The
// backend reports bounds through OnMoved/OnResized before this fires, so the
// last geometry is already saved.
func (o *Orchestrator) handleClosed(t WindowType) {
	o.mu.Lock()
	_, ok := o.windows[t]
	if ok {
		delete(o.windows, t)
	}
	o.mu.Unlock()
	if !ok {
		return
	}
	if err := o.bus.Unsubscribe(subscriberID(t)); err != nil && err != bus.ErrSubscriberNotFound {
		log.Printf("Failed to unsubscribe %s window: %v", t, err)
	}
}

// IsOpen reports whether the window currently exists
func (o *Orchestrator) IsOpen(t WindowType) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.windows[t]
	return ok
}

// pushState sends a freshly ready window everything it renders from, so a
// reloaded window catches up without waiting for the next change event.
func (o *Orchestrator) pushState(t WindowType) {
	o.mu.Lock()
	win, ok := o.windows[t]
	o.mu.Unlock()
	if !ok {
		return
	}
	win.Send(EventSettingsUpdated, o.Settings())
	win.Send(EventLaunchpadUpdated, o.data.LaunchpadApps())
	win.Send(EventRefreshHomework, o.data.LoadHomework())
}

// Settings returns the current toggle snapshot
func (o *Orchestrator) Settings() Settings {
	return Settings{
		ClockEnabled:    o.data.Setting("clockEnabled").Load(),
		HomeworkEnabled: o.data.Setting("homeworkEnabled").Load(),
		AlwaysOnTop:     o.data.Setting("alwaysOnTop").LoadDefault(false),
		DarkTheme:       o.data.Setting("darkThemeEnabled").LoadDefault(false),
		StartupEnabled:  o.data.Setting("startupEnabled").LoadDefault(false),
	}
}

// SetClockEnabled persists the toggle, opens or closes the clock overlay and
// broadcasts the change.
func (o *Orchestrator) SetClockEnabled(enabled bool) {
	o.data.Setting("clockEnabled").Save(enabled)
	if enabled {
		o.Open(WindowClock)
	} else {
		o.Close(WindowClock)
	}
	o.bus.Publish(bus.Event{Name: EventClockToggle, Payload: enabled})
}

func (o *Orchestrator) SetHomeworkEnabled(enabled bool) {
	o.data.Setting("homeworkEnabled").Save(enabled)
	if enabled {
		o.Open(WindowHomework)
	} else {
		o.Close(WindowHomework)
	}
	o.bus.Publish(bus.Event{Name: EventHomeworkToggle, Payload: enabled})
}

// SetAlwaysOnTop applies the flag to every open window and persists it for
// windows opened later.
func (o *Orchestrator) SetAlwaysOnTop(enabled bool) {
	o.data.Setting("alwaysOnTop").Save(enabled)

	o.mu.Lock()
	wins := make([]Window, 0, len(o.windows))
	for _, w := range o.windows {
		wins = append(wins, w)
	}
	o.mu.Unlock()
	for _, w := range wins {
		w.SetAlwaysOnTop(enabled)
	}
	o.bus.Publish(bus.Event{Name: EventAlwaysOnTopToggle, Payload: enabled})
}

func (o *Orchestrator) SetDarkTheme(enabled bool) {
	o.data.Setting("darkThemeEnabled").Save(enabled)
	o.bus.Publish(bus.Event{Name: EventDarkThemeToggle, Payload: enabled})
}

// SetStartupEnabled persists the toggle and registers or removes the login
// item with the OS.
func (o *Orchestrator) SetStartupEnabled(enabled bool) error {
	o.data.Setting("startupEnabled").Save(enabled)
	if o.login == nil {
		return nil
	}
	if err := o.login.SetOpenAtLogin(enabled); err != nil {
		log.Printf("Failed to update login item: %v", err)
		return err
	}
	return nil
}

// AddHomework stores the entry locally and tells every window to refresh
func (o *Orchestrator) AddHomework(hw models.Homework) []models.Homework {
	if hw.Timestamp == 0 {
		hw.Timestamp = time.Now().UnixMilli()
	}
	list := o.data.AddHomework(hw)
	o.bus.Publish(bus.Event{Name: EventRefreshHomework, Payload: list})
	return list
}

func (o *Orchestrator) DeleteHomework(index int) []models.Homework {
	list := o.data.DeleteHomework(index)
	o.bus.Publish(bus.Event{Name: EventRefreshHomework, Payload: list})
	return list
}

func (o *Orchestrator) UpdateHomework(index int, hw models.Homework) []models.Homework {
	list := o.data.UpdateHomework(index, hw)
	o.bus.Publish(bus.Event{Name: EventRefreshHomework, Payload: list})
	return list
}

func (o *Orchestrator) SaveTemplate(t models.Template) []models.Template {
	list := o.data.SaveTemplate(t)
	o.bus.Publish(bus.Event{Name: EventTemplateSaved, Payload: t})
	return list
}

func (o *Orchestrator) DeleteTemplate(id string) []models.Template {
	list := o.data.DeleteTemplate(id)
	o.bus.Publish(bus.Event{Name: EventTemplateDeleted, Payload: id})
	return list
}

func (o *Orchestrator) AddLaunchpadApp(app models.LaunchpadApp) []models.LaunchpadApp {
	list := o.data.AddLaunchpadApp(app)
	o.bus.Publish(bus.Event{Name: EventLaunchpadUpdated, Payload: list})
	return list
}

func (o *Orchestrator) RemoveLaunchpadApp(index int) []models.LaunchpadApp {
	list := o.data.RemoveLaunchpadApp(index)
	if list == nil {
		return o.data.LaunchpadApps()
	}
	o.bus.Publish(bus.Event{Name: EventLaunchpadUpdated, Payload: list})
	return list
}

// optionsFor builds the creation options for a window type, preferring saved
// bounds over the defaults.
func (o *Orchestrator) optionsFor(t WindowType) Options {
	opts := o.defaultOptions(t)
	if b, ok := o.data.Bounds(string(t)); ok {
		opts.Bounds = b
	}
	return opts
}

// defaultOptions places the overlays in a column along the right edge of the
// work area and gives the dialog windows centered fixed sizes (zero origin
// means the backend centers them).
func (o *Orchestrator) defaultOptions(t WindowType) Options {
	workWidth, _ := o.wm.WorkArea()
	onTop := o.data.Setting("alwaysOnTop").LoadDefault(false)

	overlay := Options{
		Transparent: true,
		SkipTaskbar: true,
		AlwaysOnTop: onTop,
	}

	switch t {
	case WindowClock:
		overlay.Bounds = models.WindowBounds{X: workWidth - 320, Y: 20, Width: 300, Height: 150}
		return overlay
	case WindowHomework:
		overlay.Bounds = models.WindowBounds{X: workWidth - 320, Y: 180, Width: 300, Height: 300}
		overlay.Resizable = true
		return overlay
	case WindowLaunchpad:
		overlay.Bounds = models.WindowBounds{X: workWidth - 320, Y: 490, Width: 300, Height: 200}
		return overlay
	case WindowAddHomework:
		return Options{
			Bounds:      models.WindowBounds{Width: 500, Height: 450},
			Frame:       true,
			Focusable:   true,
			AlwaysOnTop: true,
		}
	case WindowSettings:
		return Options{
			Bounds:    models.WindowBounds{Width: 700, Height: 600},
			Frame:     true,
			Resizable: true,
			Focusable: true,
		}
	case WindowDetail, WindowBigScreen, WindowDesigner:
		return Options{
			Bounds:    models.WindowBounds{Width: 800, Height: 600},
			Frame:     true,
			Resizable: true,
			Focusable: true,
		}
	case WindowWelcome:
		return Options{
			Bounds:      models.WindowBounds{Width: 600, Height: 420},
			Transparent: true,
			Focusable:   true,
		}
	default: // about, account and any future dialog
		return Options{
			Bounds:    models.WindowBounds{Width: 500, Height: 400},
			Frame:     true,
			Focusable: true,
		}
	}
}

func subscriberID(t WindowType) string {
	return "window:" + string(t)
}
