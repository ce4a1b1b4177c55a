package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation indicates the config document has a shape the schema
// rejects: wrong types or unknown keys.
var ErrSchemaViolation = errors.New("config does not match schema")

// documentSchema catches structural mistakes (a string where a number
// belongs, a misspelled key) before unmarshalling silently drops them.
const documentSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"output": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"format": {"type": "string"},
				"show_files": {"type": "boolean"},
				"metrics_file": {"type": "string"}
			}
		},
		"analysis": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"workers": {"type": "integer"},
				"cache_size": {"type": "integer"},
				"ignore_patterns": {"type": "array", "items": {"type": "string"}},
				"languages": {"type": "array", "items": {"type": "string"}}
			}
		}
	}
}`

// validateDocument checks the merged settings document against the schema.
func validateDocument(settings map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewGoLoader(settings),
	)
	if err != nil {
		return fmt.Errorf("validate config schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(details, "; "))
}
