package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"go.yaml.in/yaml/v3"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

// minimalSchema covers the mandatory fields of a record. It is used whenever
// no external schema is configured or the configured one cannot be loaded.
func minimalSchema() *jsonschema.Schema {
	str := func() *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} }
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"id", "technique", "experimental_setup"},
		Properties: map[string]*jsonschema.Schema{
			"id": str(),
			"technique": {
				Type:     "object",
				Required: []string{"name"},
				Properties: map[string]*jsonschema.Schema{
					"name":       str(),
					"parameters": {Type: "object"},
				},
			},
			"experimental_setup": {
				Type:     "object",
				Required: []string{"working_electrode", "reference_electrode", "electrolyte"},
				Properties: map[string]*jsonschema.Schema{
					"working_electrode":   str(),
					"reference_electrode": str(),
					"electrolyte":         str(),
				},
			},
		},
	}
}

// LoadSchema reads a JSON or YAML schema document from path.
func LoadSchema(path string) (*jsonschema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing schema yaml: %w", err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("converting schema yaml: %w", err)
		}
	}

	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	return &s, nil
}

// checkShape walks s over value and reports missing required fields and type
// mismatches in a stable order: required names as declared, then properties
// sorted by name. An absent or empty required object is reported through its
// own required fields when its schema declares any.
func checkShape(s *jsonschema.Schema, value any, path string, errs *[]string) {
	if s == nil {
		return
	}
	if want := schemaTypes(s); len(want) > 0 && !matchesType(want, value) {
		*errs = append(*errs, fmt.Sprintf("field %s must be of type %s", displayPath(path), strings.Join(want, " or ")))
		return
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return
	}
	for _, name := range s.Required {
		child := obj[name]
		if metadata.IsPresent(child) {
			continue
		}
		if sub := s.Properties[name]; sub != nil && len(sub.Required) > 0 && emptyObject(child) {
			checkShape(sub, map[string]any{}, join(path, name), errs)
			continue
		}
		*errs = append(*errs, "missing required field: "+join(path, name))
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		child, ok := obj[name]
		if !ok || !metadata.IsPresent(child) {
			continue
		}
		checkShape(s.Properties[name], child, join(path, name), errs)
	}
}

func emptyObject(v any) bool {
	if v == nil {
		return true
	}
	m, ok := v.(map[string]any)
	return ok && len(m) == 0
}

func schemaTypes(s *jsonschema.Schema) []string {
	if s.Type != "" {
		return []string{s.Type}
	}
	return s.Types
}

func matchesType(want []string, v any) bool {
	for _, t := range want {
		if jsonTypeOf(v, t) {
			return true
		}
	}
	return false
}

func jsonTypeOf(v any, t string) bool {
	switch t {
	case "object":
		_, ok := v.(map[string]any)
		return ok
	case "array":
		_, ok := metadata.Numbers(v)
		if ok {
			return true
		}
		switch v.(type) {
		case []any, []string:
			return true
		}
		return false
	case "string":
		_, ok := v.(string)
		return ok
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "null":
		return v == nil
	case "number", "integer":
		if _, isStr := v.(string); isStr {
			return false
		}
		f, ok := metadata.Number(v)
		if !ok {
			return false
		}
		return t == "number" || f == math.Trunc(f)
	}
	return true
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func displayPath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}

// jsonInstance converts m to the plain JSON value tree the schema engine
// expects.
func jsonInstance(m map[string]any) (any, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
