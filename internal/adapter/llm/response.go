package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var errNoJSONObject = errors.New("no JSON object found in response")

// Schema is a named JSON Schema definition for a structured response.
type Schema struct {
	Name       string
	Definition map[string]any
}

var (
	subtopicsSchema = &Schema{
		Name: "subtopics",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"subtopics"},
			"properties": map[string]any{
				"subtopics": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
	}

	refinedSchema = &Schema{
		Name: "refined_subtopics",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"refined_subtopics"},
			"properties": map[string]any{
				"refined_subtopics": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
	}

	// Category values may come back as a list, a single string or null.
	categoriesSchema = &Schema{
		Name: "categories",
		Definition: map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					map[string]any{"type": "string"},
					map[string]any{"type": "null"},
				},
			},
		},
	}
)

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// cleanResponse trims the response and removes any <think> block.
func cleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		start := strings.Index(s, "<think>")
		if start == -1 {
			break
		}
		end := strings.Index(s[start:], "</think>")
		if end == -1 {
			break
		}
		s = s[:start] + s[start+end+len("</think>"):]
	}
	return strings.TrimSpace(s)
}

// extractJSON returns the text between the first '{' and the last '}'. When
// that span is not valid JSON, as with a trailing aside containing a brace,
// it falls back to the first balanced object.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", errNoJSONObject
	}
	span := s[start : end+1]
	if json.Valid([]byte(span)) {
		return span, nil
	}
	if obj, ok := firstBalancedObject(s[start:]); ok {
		return obj, nil
	}
	return span, nil
}

// firstBalancedObject scans s, which starts with '{', up to the brace that
// closes it. Braces inside JSON strings are ignored.
func firstBalancedObject(s string) (string, bool) {
	depth := 0
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// decodeStructured extracts the JSON object from raw, validates it against
// schema and unmarshals it into out.
func decodeStructured(raw string, schema *Schema, out any) error {
	obj, err := extractJSON(cleanResponse(raw))
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if err := json.Unmarshal([]byte(obj), out); err != nil {
		return fmt.Errorf("decode %s: %w", schema.Name, err)
	}
	return nil
}

func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a plain decoded JSON value.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
