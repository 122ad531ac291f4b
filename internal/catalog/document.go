package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/talgya/cubicle/internal/office"
)

// Document is the serialized form of a catalog. Behaviors are stored by
// strategy name and parameters, never as code.
type Document struct {
	Actions []ActionDoc `yaml:"actions" json:"actions"`
}

// ActionDoc is one serialized action.
type ActionDoc struct {
	ID       string             `yaml:"id" json:"id"`
	Label    string             `yaml:"label" json:"label"`
	Zone     string             `yaml:"zone" json:"zone"`
	Duration int                `yaml:"duration" json:"duration"`
	Strategy string             `yaml:"strategy" json:"strategy"`
	Params   map[string]float64 `yaml:"params,omitempty" json:"params,omitempty"`
}

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["actions"],
  "additionalProperties": false,
  "properties": {
    "actions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "zone", "duration", "strategy"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "label": {"type": "string"},
          "zone": {"type": "string", "minLength": 1},
          "duration": {"type": "integer", "minimum": 1},
          "strategy": {"type": "string", "minLength": 1},
          "params": {
            "type": "object",
            "additionalProperties": {"type": "number"}
          }
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("catalog.schema.json", documentSchema)
	})
	return schema, schemaErr
}

// Parse decodes and validates a YAML (or JSON) catalog document and resolves
// each action's strategy against reg. An unresolvable strategy does not fail
// the load: the action is kept with an Invalid behavior and a warning logged.
func Parse(data []byte, reg *Registry) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	// Round-trip through JSON so the validator sees plain JSON values.
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize catalog: %w", err)
	}
	var generic any
	if err := json.Unmarshal(js, &generic); err != nil {
		return nil, fmt.Errorf("normalize catalog: %w", err)
	}
	s, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := s.Validate(generic); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(js, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return doc.Build(reg)
}

// Build turns the document into a catalog.
func (d Document) Build(reg *Registry) (*Catalog, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	seen := make(map[string]bool, len(d.Actions))
	defs := make([]Definition, 0, len(d.Actions))
	for _, a := range d.Actions {
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate action %q", a.ID)
		}
		seen[a.ID] = true

		zone, ok := office.ParseZone(a.Zone)
		if !ok {
			return nil, fmt.Errorf("action %q: unknown zone %q", a.ID, a.Zone)
		}
		if a.Duration < 1 {
			return nil, fmt.Errorf("action %q: duration must be positive", a.ID)
		}

		b, err := reg.Build(a.Strategy, a.Params)
		if err != nil {
			slog.Warn("catalog action disabled", "action", a.ID, "error", err)
			b = Invalid{Requested: a.Strategy}
		}
		label := a.Label
		if label == "" {
			label = a.ID
		}
		defs = append(defs, Definition{
			ID:       a.ID,
			Label:    label,
			Zone:     zone,
			Duration: a.Duration,
			Behavior: b,
			Params:   copyParams(a.Params),
		})
	}
	return New(defs...), nil
}

// Export serializes the catalog to a document.
func (c *Catalog) Export() Document {
	doc := Document{Actions: make([]ActionDoc, 0, len(c.defs))}
	for _, d := range c.defs {
		strategy := ""
		if d.Behavior != nil {
			strategy = d.Behavior.Strategy()
		}
		doc.Actions = append(doc.Actions, ActionDoc{
			ID:       d.ID,
			Label:    d.Label,
			Zone:     d.Zone.String(),
			Duration: d.Duration,
			Strategy: strategy,
			Params:   copyParams(d.Params),
		})
	}
	return doc
}

// YAML encodes the catalog as a YAML document.
func (c *Catalog) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c.Export())
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return out, nil
}

func copyParams(p map[string]float64) map[string]float64 {
	if len(p) == 0 {
		return nil
	}
	out := make(map[string]float64, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
