package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) for a
// serialized ExtractionResult, as a generic map. The pipeline validates
// results against it before persisting.
func BuildResultJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"document_type": map[string]any{
				"type": "string",
				"enum": []string{"INVOICE", "RECEIPT", "UNKNOWN"},
			},
			"fields": map[string]any{
				"type": "object",
			},
			"attempted_fields": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
			"confidence": map[string]any{
				"type":    "number",
				"minimum": 0.0,
				"maximum": 1.0,
			},
		},
		"required": []string{"document_type", "fields", "attempted_fields", "confidence"},
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

// ValidateResultJSON checks a serialized ExtractionResult.
func ValidateResultJSON(data []byte) error {
	return ValidateJSONAgainstSchema(BuildResultJSONSchema(), data)
}
