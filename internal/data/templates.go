package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roversim/server/internal/object"
)

// Template describes how one object type is built: what capabilities it
// exposes and its base stats. Loaded from YAML at boot.
type Template struct {
	Type         object.ObjectType
	Name         string
	Scripted     bool    // behavior driven by Lua each tick
	Flying       bool    // exposes the landed/airborne physics capability
	StartsLanded bool    // initial flight state for flying units
	Destructible bool    // gets a teardown pass before removal
	Explosive    bool    // can be detonated
	MaxEnergy    float64 // energy capacity at power=1.0
	Speed        float64 // advance speed in world units per second
	Scale        float64 // base model scale multiplied by CreateParams.Zoom
}

type templateYaml struct {
	Type         string  `yaml:"type"`
	Name         string  `yaml:"name"`
	Scripted     bool    `yaml:"scripted"`
	Flying       bool    `yaml:"flying"`
	StartsLanded bool    `yaml:"starts_landed"`
	Destructible bool    `yaml:"destructible"`
	Explosive    bool    `yaml:"explosive"`
	MaxEnergy    float64 `yaml:"max_energy"`
	Speed        float64 `yaml:"speed"`
	Scale        float64 `yaml:"scale"`
}

type templateFile struct {
	Templates []templateYaml `yaml:"templates"`
}

// TemplateTable maps object types to their templates.
type TemplateTable struct {
	byType map[object.ObjectType]*Template
}

// LoadTemplateTable reads the object template list from a YAML file.
func LoadTemplateTable(path string) (*TemplateTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template table %s: %w", path, err)
	}
	var f templateFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse template table %s: %w", path, err)
	}

	table := &TemplateTable{byType: make(map[object.ObjectType]*Template, len(f.Templates))}
	for i, row := range f.Templates {
		t, ok := object.ParseObjectType(row.Type)
		if !ok {
			return nil, fmt.Errorf("template table %s: row %d: unknown type %q", path, i, row.Type)
		}
		if _, dup := table.byType[t]; dup {
			return nil, fmt.Errorf("template table %s: duplicate type %q", path, row.Type)
		}
		tmpl := &Template{
			Type:         t,
			Name:         row.Name,
			Scripted:     row.Scripted,
			Flying:       row.Flying,
			StartsLanded: row.StartsLanded,
			Destructible: row.Destructible,
			Explosive:    row.Explosive,
			MaxEnergy:    row.MaxEnergy,
			Speed:        row.Speed,
			Scale:        row.Scale,
		}
		if tmpl.Scale == 0 {
			tmpl.Scale = 1.0
		}
		table.byType[t] = tmpl
	}
	return table, nil
}

// Get returns the template for a type, or nil if none is defined.
func (t *TemplateTable) Get(typ object.ObjectType) *Template {
	return t.byType[typ]
}

// Count returns the number of loaded templates.
func (t *TemplateTable) Count() int { return len(t.byType) }
