package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const listSchemaJSON = `{
  "type": "object",
  "propertyNames": { "pattern": "^(0|[1-9][0-9]*)$" },
  "additionalProperties": {
    "type": "object",
    "required": ["description", "boards", "_isTask"],
    "properties": {
      "_id":         { "type": "integer", "minimum": 0 },
      "_date":       { "type": "string" },
      "_timestamp":  { "type": "integer" },
      "description": { "type": "string" },
      "isStarred":   { "type": "boolean" },
      "boards":      { "type": "array", "items": { "type": "string" } },
      "_isTask":     { "type": "boolean" },
      "isComplete":  { "type": ["boolean", "null"] },
      "inProgress":  { "type": ["boolean", "null"] },
      "priority":    { "type": ["integer", "null"], "minimum": 1, "maximum": 3 }
    }
  }
}`

var listSchema = jsonschema.MustCompileString("tasker-list.schema.json", listSchemaJSON)

// validateDocument checks raw task list JSON against the list schema and
// reports the first violation found.
func validateDocument(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ParseError{Err: err}
	}
	err := listSchema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &ParseError{Err: err}
	}
	leaf := firstLeaf(ve)
	return &ParseError{
		Path: jsonPointerToPath(leaf.InstanceLocation),
		Err:  fmt.Errorf("%s", leaf.Message),
	}
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	parts := strings.Split(ptr, "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[i] = strings.ReplaceAll(part, "~0", "~")
	}
	return strings.Join(parts, ".")
}
