package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"classwindow/models"
)

func tpl(components ...models.Component) models.Template {
	return models.Template{ID: "tpl-1", Name: "test", Components: components}
}

func TestContentOrdersByOrderField(t *testing.T) {
	got := Content(tpl(
		models.Component{ID: "c2", Type: models.ComponentFixedText, Order: 2, Content: "ex. 1-4"},
		models.Component{ID: "c1", Type: models.ComponentFixedText, Order: 1, Content: "p. 12"},
	), nil)
	assert.Equal(t, "p. 12 ex. 1-4", got)
}

func TestContentUsesDefaultsWhenNoValueGiven(t *testing.T) {
	got := Content(tpl(
		models.Component{ID: "c1", Type: models.ComponentFixedText, Order: 1, Content: "read page"},
		models.Component{ID: "c2", Type: models.ComponentNumberSelect, Order: 2, DefaultValue: 3},
		models.Component{ID: "c3", Type: models.ComponentTextDropdown, Order: 3, DefaultValue: "aloud"},
	), nil)
	assert.Equal(t, "read page 3 aloud", got)
}

func TestContentPrefersChosenValues(t *testing.T) {
	template := tpl(
		models.Component{ID: "c1", Type: models.ComponentFixedText, Order: 1, Content: "read page"},
		models.Component{ID: "c2", Type: models.ComponentNumberSelect, Order: 2, DefaultValue: 3},
	)
	got := Content(template, map[string]any{"c2": 7})
	assert.Equal(t, "read page 7", got)

	// values decoded from JSON arrive as float64
	got = Content(template, map[string]any{"c2": float64(7)})
	assert.Equal(t, "read page 7", got)
}

func TestContentSkipsEmptyParts(t *testing.T) {
	got := Content(tpl(
		models.Component{ID: "c1", Type: models.ComponentFixedText, Order: 1, Content: ""},
		models.Component{ID: "c2", Type: models.ComponentFixedText, Order: 2, Content: "hello"},
		models.Component{ID: "c3", Type: models.ComponentTextDropdown, Order: 3},
	), nil)
	assert.Equal(t, "hello", got)
}

func TestContentEmptyTemplate(t *testing.T) {
	assert.Equal(t, "", Content(tpl(), nil))
	assert.Equal(t, "", Content(models.Template{}, nil))
}

func TestContentUnknownComponentTypeIgnored(t *testing.T) {
	got := Content(tpl(
		models.Component{ID: "c1", Type: "hologram", Order: 1, Content: "x"},
		models.Component{ID: "c2", Type: models.ComponentFixedText, Order: 2, Content: "hello"},
	), nil)
	assert.Equal(t, "hello", got)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "abc", formatValue("abc"))
	assert.Equal(t, "3", formatValue(3))
	assert.Equal(t, "3", formatValue(float64(3)))
	assert.Equal(t, "3.5", formatValue(3.5))
}
