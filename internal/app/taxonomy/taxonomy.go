// Package taxonomy holds the static category → symptom → cause tree that
// the triage store is seeded from.
package taxonomy

import (
	"fmt"
	"strings"
)

type Category struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Table is the full taxonomy. Symptom-keyed maps may omit symptoms that
// have no entries.
type Table struct {
	Categories       []Category
	Symptoms         map[string][]string
	Causes           map[string][]string
	Actions          map[string][]string
	DetectionMethods map[string][]string
}

func (t Table) CategoryNames() []string {
	names := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		names = append(names, c.Name)
	}
	return names
}

// SymptomNames returns every symptom in category order, then listing order.
func (t Table) SymptomNames() []string {
	var names []string
	for _, c := range t.Categories {
		names = append(names, t.Symptoms[c.Name]...)
	}
	return names
}

// FindCategory matches a category name case-insensitively and returns the
// canonical spelling.
func (t Table) FindCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range t.Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// Validate checks that every name referenced by the table is defined once.
func (t Table) Validate() error {
	categories := make(map[string]bool, len(t.Categories))
	for _, c := range t.Categories {
		if c.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if categories[c.Name] {
			return fmt.Errorf("duplicate category %q", c.Name)
		}
		categories[c.Name] = true
	}

	symptoms := make(map[string]bool)
	for category, list := range t.Symptoms {
		if !categories[category] {
			return fmt.Errorf("symptoms reference unknown category %q", category)
		}
		for _, s := range list {
			if symptoms[s] {
				return fmt.Errorf("duplicate symptom %q", s)
			}
			symptoms[s] = true
		}
	}

	for kind, m := range map[string]map[string][]string{
		"causes":            t.Causes,
		"actions":           t.Actions,
		"detection methods": t.DetectionMethods,
	} {
		for s := range m {
			if !symptoms[s] {
				return fmt.Errorf("%s reference unknown symptom %q", kind, s)
			}
		}
	}
	return nil
}
