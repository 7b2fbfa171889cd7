package localdata

import (
	"fmt"
	"math/rand"
	"time"

	"classwindow/models"
)

// LoadTemplates reads the local template list
func (s *Store) LoadTemplates() []models.Template {
	var list []models.Template
	if !readJSONFile(s.templatePath(), &list) || list == nil {
		return []models.Template{}
	}
	return list
}

func (s *Store) SaveTemplates(list []models.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeJSONFile(s.templatePath(), list)
}

// SaveTemplate upserts by template id: an existing id is updated in place,
// anything else is appended. Templates are identified by id everywhere in
// the system, including the cloud sync, so id is the dedup key here too.
func (s *Store) SaveTemplate(t models.Template) []models.Template {
	list := s.LoadTemplates()
	for i := range list {
		if list[i].ID == t.ID {
			list[i] = t
			s.SaveTemplates(list)
			return list
		}
	}
	list = append(list, t)
	s.SaveTemplates(list)
	return list
}

// DeleteTemplate removes by id; unknown ids are a no-op
func (s *Store) DeleteTemplate(id string) []models.Template {
	list := s.LoadTemplates()
	filtered := make([]models.Template, 0, len(list))
	for _, t := range list {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	s.SaveTemplates(filtered)
	return filtered
}

// NewTemplate builds an empty template with a time+random id and client-side
// clock timestamps.
func NewTemplate(name, description string) models.Template {
	now := time.Now().UTC().Format(time.RFC3339)
	return models.Template{
		ID:          newID("template"),
		Name:        name,
		Description: description,
		Components:  []models.Component{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewFixedText builds a static text component
func NewFixedText(content string) models.Component {
	c := newComponent(models.ComponentFixedText)
	c.Content = content
	c.FontSize = "medium"
	c.FontWeight = "normal"
	return c
}

// NewNumberSelect builds a numeric range component; zero min/max fall back to
// the designer defaults 1..10.
func NewNumberSelect(label string, min, max, step, defaultValue int) models.Component {
	if min == 0 && max == 0 {
		min, max = 1, 10
	}
	if step == 0 {
		step = 1
	}
	if defaultValue == 0 {
		defaultValue = min
	}
	c := newComponent(models.ComponentNumberSelect)
	c.Label = label
	c.Min = min
	c.Max = max
	c.Step = step
	c.DefaultValue = defaultValue
	return c
}

// NewTextDropdown builds an option-list component
func NewTextDropdown(label string, options []string, defaultValue string) models.Component {
	c := newComponent(models.ComponentTextDropdown)
	c.Label = label
	c.Options = options
	c.DefaultValue = defaultValue
	return c
}

func newComponent(componentType string) models.Component {
	return models.Component{
		ID:    newID("component"),
		Type:  componentType,
		Order: float64(time.Now().UnixMilli()),
	}
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}
