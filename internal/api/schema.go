package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schema is a named JSON Schema definition for a response body.
type schema struct {
	name       string
	definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// Unknown resource platforms are allowed; they are dropped at render time.
var roadmapSchema = &schema{
	name: "roadmap",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"modules"},
		"properties": map[string]any{
			"skill": map[string]any{"type": "string"},
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"title", "subtopics"},
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
						"subtopics": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"title"},
								"properties": map[string]any{
									"title": map[string]any{"type": "string"},
									"resources": map[string]any{
										"type":                 "object",
										"additionalProperties": map[string]any{"type": "string"},
									},
								},
							},
						},
					},
				},
			},
		},
	},
}

var quizSchema = &schema{
	name: "quiz",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"question", "options", "answer"},
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answer": map[string]any{"type": "string"},
		},
	},
}

// validate checks an already-parsed JSON value against the schema.
func (s *schema) validate(parsed any) error {
	s.once.Do(s.compile)
	if s.err != nil {
		return fmt.Errorf("compile schema %q: %w", s.name, s.err)
	}
	if err := s.compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func (s *schema) compile() {
	// The compiler wants a generic JSON value, not Go maps with typed slices.
	raw, err := json.Marshal(s.definition)
	if err != nil {
		s.err = err
		return
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.err = err
		return
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.name)
	if err := c.AddResource(url, doc); err != nil {
		s.err = fmt.Errorf("add resource: %w", err)
		return
	}
	s.compiled, s.err = c.Compile(url)
}
