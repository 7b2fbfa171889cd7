package localdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classwindow/models"
)

func TestConfigRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	s.SaveConfig(map[string]any{"clockEnabled": false, "launchpadApps": []models.LaunchpadApp{}})

	cfg := s.LoadConfig()
	assert.Equal(t, false, cfg["clockEnabled"])
	assert.Contains(t, cfg, "timestamp")
}

func TestConfigSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	New(dir).SaveConfig(map[string]any{"clockEnabled": false})

	cfg := New(dir).LoadConfig()
	assert.Equal(t, false, cfg["clockEnabled"])
}

func TestConfigMissingOrBrokenFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	assert.Empty(t, s.LoadConfig())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("not json"), 0o644))
	assert.Empty(t, s.LoadConfig())
}

func TestSettingDefaults(t *testing.T) {
	s := New(t.TempDir())

	assert.True(t, s.Setting("clockEnabled").Load())
	assert.False(t, s.Setting("alwaysOnTop").LoadDefault(false))

	s.Setting("clockEnabled").Save(false)
	assert.False(t, s.Setting("clockEnabled").Load())

	// other keys are untouched
	assert.True(t, s.Setting("homeworkEnabled").Load())
}

func TestBounds(t *testing.T) {
	s := New(t.TempDir())

	_, ok := s.Bounds("clock")
	assert.False(t, ok)

	want := models.WindowBounds{X: 100, Y: 20, Width: 300, Height: 150}
	s.SaveBounds("clock", want)

	got, ok := s.Bounds("clock")
	require.True(t, ok)
	assert.Equal(t, want, got)

	// a second window does not disturb the first
	s.SaveBounds("homework", models.WindowBounds{X: 100, Y: 180, Width: 300, Height: 300})
	got, ok = s.Bounds("clock")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestClearBounds(t *testing.T) {
	s := New(t.TempDir())
	s.SaveBounds("clock", models.WindowBounds{X: 1, Y: 2, Width: 3, Height: 4})

	s.ClearBounds()
	_, ok := s.Bounds("clock")
	assert.False(t, ok)

	// clearing an already empty store is fine
	s.ClearBounds()
}

func TestHomeworkPrependsNewest(t *testing.T) {
	s := New(t.TempDir())

	s.AddHomework(models.Homework{Subject: "math", Content: "p. 12", Timestamp: 1})
	list := s.AddHomework(models.Homework{Subject: "english", Content: "read ch. 3", Timestamp: 2})

	require.Len(t, list, 2)
	assert.Equal(t, "english", list[0].Subject)
	assert.Equal(t, "math", list[1].Subject)
	assert.Equal(t, list, s.LoadHomework())
}

func TestHomeworkDelete(t *testing.T) {
	s := New(t.TempDir())
	s.AddHomework(models.Homework{Subject: "math", Timestamp: 1})
	s.AddHomework(models.Homework{Subject: "english", Timestamp: 2})

	list := s.DeleteHomework(0)
	require.Len(t, list, 1)
	assert.Equal(t, "math", list[0].Subject)

	// out of range leaves the list alone
	list = s.DeleteHomework(5)
	require.Len(t, list, 1)
	list = s.DeleteHomework(-1)
	require.Len(t, list, 1)
}

func TestHomeworkUpdate(t *testing.T) {
	s := New(t.TempDir())
	s.AddHomework(models.Homework{Subject: "math", Content: "old", Timestamp: 1})

	list := s.UpdateHomework(0, models.Homework{Subject: "math", Content: "new", Timestamp: 1})
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].Content)

	list = s.UpdateHomework(9, models.Homework{Subject: "x"})
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].Content)
}

func TestTemplateUpsertByID(t *testing.T) {
	s := New(t.TempDir())

	a := models.Template{ID: "tpl-1", Name: "A"}
	b := models.Template{ID: "tpl-2", Name: "B"}
	s.SaveTemplate(a)
	list := s.SaveTemplate(b)
	require.Len(t, list, 2)

	// same id updates in place, keeping position
	a.Name = "A2"
	list = s.SaveTemplate(a)
	require.Len(t, list, 2)
	assert.Equal(t, "A2", list[0].Name)
	assert.Equal(t, "tpl-2", list[1].ID)
}

func TestTemplateDelete(t *testing.T) {
	s := New(t.TempDir())
	s.SaveTemplate(models.Template{ID: "tpl-1", Name: "A"})
	s.SaveTemplate(models.Template{ID: "tpl-2", Name: "B"})

	list := s.DeleteTemplate("tpl-1")
	require.Len(t, list, 1)
	assert.Equal(t, "tpl-2", list[0].ID)

	list = s.DeleteTemplate("tpl-9")
	require.Len(t, list, 1)
}

func TestNewTemplate(t *testing.T) {
	tpl := NewTemplate("Weekly", "standard weekly layout")

	assert.Regexp(t, `^template-\d+-\d{3}$`, tpl.ID)
	assert.Equal(t, "Weekly", tpl.Name)
	assert.NotNil(t, tpl.Components)
	assert.Empty(t, tpl.Components)
	assert.NotEmpty(t, tpl.CreatedAt)
	assert.Equal(t, tpl.CreatedAt, tpl.UpdatedAt)
}

func TestComponentConstructors(t *testing.T) {
	text := NewFixedText("Math homework:")
	assert.Equal(t, models.ComponentFixedText, text.Type)
	assert.Equal(t, "Math homework:", text.Content)
	assert.Equal(t, "medium", text.FontSize)
	assert.Equal(t, "normal", text.FontWeight)
	assert.Regexp(t, `^component-\d+-\d{3}$`, text.ID)

	num := NewNumberSelect("page", 0, 0, 0, 0)
	assert.Equal(t, models.ComponentNumberSelect, num.Type)
	assert.Equal(t, 1, num.Min)
	assert.Equal(t, 10, num.Max)
	assert.Equal(t, 1, num.Step)
	assert.Equal(t, 1, num.DefaultValue)

	drop := NewTextDropdown("book", []string{"red", "blue"}, "red")
	assert.Equal(t, models.ComponentTextDropdown, drop.Type)
	assert.Equal(t, []string{"red", "blue"}, drop.Options)
	assert.Equal(t, "red", drop.DefaultValue)
}

func TestLaunchpadApps(t *testing.T) {
	s := New(t.TempDir())
	assert.Empty(t, s.LaunchpadApps())

	list := s.AddLaunchpadApp(models.LaunchpadApp{Name: "Calculator", Path: "/usr/bin/calc"})
	require.Len(t, list, 1)
	assert.Equal(t, "app", list[0].Type)

	list = s.AddLaunchpadApp(models.LaunchpadApp{Name: "Docs", Path: "https://docs.example.com", Type: "link"})
	require.Len(t, list, 2)
	assert.Equal(t, "link", list[1].Type)
}

func TestLaunchpadAppsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	New(dir).AddLaunchpadApp(models.LaunchpadApp{Name: "Calculator", Path: "/usr/bin/calc"})

	// a fresh store decodes the generic JSON shape back into typed apps
	list := New(dir).LaunchpadApps()
	require.Len(t, list, 1)
	assert.Equal(t, "Calculator", list[0].Name)
	assert.Equal(t, "app", list[0].Type)
}

func TestRemoveLaunchpadApp(t *testing.T) {
	s := New(t.TempDir())
	s.AddLaunchpadApp(models.LaunchpadApp{Name: "A", Path: "/a"})
	s.AddLaunchpadApp(models.LaunchpadApp{Name: "B", Path: "/b"})

	list := s.RemoveLaunchpadApp(0)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)

	assert.Nil(t, s.RemoveLaunchpadApp(7))
	require.Len(t, s.LaunchpadApps(), 1)
}

type fakeLauncher struct {
	opened string
	execed string
}

func (f *fakeLauncher) OpenExternal(url string) error { f.opened = url; return nil }
func (f *fakeLauncher) ExecFile(path string) error    { f.execed = path; return nil }

func TestLaunch(t *testing.T) {
	l := &fakeLauncher{}

	require.NoError(t, Launch(l, models.LaunchpadApp{Type: "link", Path: "https://docs.example.com"}))
	assert.Equal(t, "https://docs.example.com", l.opened)
	assert.Empty(t, l.execed)

	require.NoError(t, Launch(l, models.LaunchpadApp{Type: "app", Path: "/usr/bin/calc"}))
	assert.Equal(t, "/usr/bin/calc", l.execed)
}
