// Package render turns a homework template plus a set of chosen values into
// the final content string.
package render

import (
	"fmt"
	"sort"
	"strings"

	"classwindow/models"
)

// Content renders the template's components in order and joins their text
// with single spaces. values maps component id to the value the user picked;
// components without a value fall back to their defaultValue.
func Content(t models.Template, values map[string]any) string {
	components := make([]models.Component, len(t.Components))
	copy(components, t.Components)
	sort.SliceStable(components, func(i, j int) bool {
		return components[i].Order < components[j].Order
	})

	parts := make([]string, 0, len(components))
	for _, c := range components {
		var text string
		switch c.Type {
		case models.ComponentFixedText:
			text = c.Content
		case models.ComponentNumberSelect, models.ComponentTextDropdown:
			v, ok := values[c.ID]
			if !ok {
				v = c.DefaultValue
			}
			text = formatValue(v)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// formatValue prints numbers without a trailing .0 so a numberSelect value of
// 3 renders as "3" whether it arrived as an int or as JSON's float64.
func formatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case int:
		return fmt.Sprintf("%d", n)
	case float64:
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%v", n)
	default:
		return fmt.Sprintf("%v", n)
	}
}
