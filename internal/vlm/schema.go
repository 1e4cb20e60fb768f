package vlm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildEventJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Used locally to validate sanitized payloads before merging.
func BuildEventJSONSchema() map[string]any {
	entry := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"rank":       map[string]any{"type": []string{"integer", "null"}},
			"bib":        map[string]any{"type": "string"},
			"name":       map[string]any{"type": "string"},
			"team":       map[string]any{"type": "string"},
			"run1_time":  map[string]any{"type": "string"},
			"run2_time":  map[string]any{"type": "string"},
			"total_time": map[string]any{"type": "string"},
			"time_diff":  map[string]any{"type": "string"},
			"status":     map[string]any{"type": "string", "enum": []string{"OK", "DNF", "DNS", "DQ"}},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"competition": map[string]any{"type": "string"},
			"date":        map[string]any{"type": "string"},
			"venue":       map[string]any{"type": "string"},
			"discipline":  map[string]any{"type": "string"},
			"gender":      map[string]any{"type": "string"},
			"age_group":   map[string]any{"type": "string"},
			"round_type":  map[string]any{"type": "string"},
			"results":     map[string]any{"type": "array", "items": entry},
		},
		"required": []string{"results"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
