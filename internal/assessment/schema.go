package assessment

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Per-section schemas for import documents. Sections are validated
// independently so one malformed section never blocks the others.
var sectionSchemas = map[string]map[string]any{
	"history": {
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":          map[string]any{"type": "string"},
				"date":        map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
				"focus":       map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"discipline":  map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"execution":   map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"consistency": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"total":       map[string]any{"type": "integer", "minimum": 4, "maximum": 20},
				"mindType":    map[string]any{"type": "string"},
				"rank":        map[string]any{"type": "string"},
			},
			"required": []any{"date", "focus", "discipline", "execution", "consistency"},
		},
	},
	"achievements": {
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	},
	"xp": {
		"type":    "integer",
		"minimum": 0,
	},
	"streak": {
		"type":    "integer",
		"minimum": 0,
	},
	"lastActiveDate": {
		"type":    "string",
		"pattern": `^(\d{4}-\d{2}-\d{2})?$`,
	},
}

// compiledSchemas caches compiled section schemas by name.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

// validateSection checks one parsed section value against its schema.
func validateSection(name string, value any) error {
	compiled, err := compiledSection(name)
	if err != nil {
		return err
	}
	if err := compiled.Validate(value); err != nil {
		return fmt.Errorf("section %s: %w", name, err)
	}
	return nil
}

func compiledSection(name string) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, ok := sectionSchemas[name]
	if !ok {
		return nil, fmt.Errorf("no schema for section %s", name)
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	raw, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource %s: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}

	compiledSchemas.Store(name, compiled)
	return compiled, nil
}
