// Package recordio reads and writes metadata records as YAML or JSON files.
package recordio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

// Supported formats. Auto picks one from the file extension.
const (
	FormatAuto = "auto"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ResolveFormat turns a format flag and a path into "yaml" or "json".
// Empty and "auto" use the extension: .json is JSON, anything else YAML.
func ResolveFormat(path, format string) (string, error) {
	actual := strings.ToLower(strings.TrimSpace(format))
	switch actual {
	case "", FormatAuto:
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return FormatJSON, nil
		}
		return FormatYAML, nil
	case "yml":
		return FormatYAML, nil
	case FormatYAML, FormatJSON:
		return actual, nil
	default:
		return "", fmt.Errorf("unsupported metadata format: %q", format)
	}
}

// ReadMap decodes a metadata file into its generic mapping form without
// requiring it to be a well-formed record.
func ReadMap(path, format string) (map[string]any, error) {
	actual, content, err := read(path, format)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if actual == FormatJSON {
		err = json.Unmarshal(content, &m)
	} else {
		err = yaml.Unmarshal(content, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", path, actual, err)
	}
	return m, nil
}

// ReadRecord decodes a metadata file into a Record.
func ReadRecord(path, format string) (*metadata.Record, error) {
	actual, content, err := read(path, format)
	if err != nil {
		return nil, err
	}
	// JSON is valid YAML, so both go through metadata.Parse once JSON input
	// is known to be JSON.
	if actual == FormatJSON && !json.Valid(content) {
		return nil, fmt.Errorf("decoding %s as json: invalid JSON", path)
	}
	return metadata.Parse(string(content))
}

func read(path, format string) (string, []byte, error) {
	actual, err := ResolveFormat(path, format)
	if err != nil {
		return "", nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return actual, content, nil
}

// Encode renders rec in the given format ("yaml" or "json").
func Encode(rec *metadata.Record, format string) (string, error) {
	switch format {
	case FormatJSON:
		if rec == nil {
			return "", fmt.Errorf("encoding metadata: record is nil")
		}
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return "", fmt.Errorf("encoding metadata %s: %w", rec.ID, err)
		}
		return buf.String(), nil
	case FormatYAML:
		return metadata.Serialize(rec)
	default:
		return "", fmt.Errorf("unsupported metadata format: %q", format)
	}
}

// WriteRecord writes rec to path, creating parent directories. An explicit
// format must agree with a .json/.yaml/.yml extension.
func WriteRecord(rec *metadata.Record, path, format string) error {
	actual, err := ResolveFormat(path, format)
	if err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case actual == FormatJSON && (ext == ".yaml" || ext == ".yml"),
		actual == FormatYAML && ext == ".json":
		return fmt.Errorf("output path extension %q does not match format %q", ext, actual)
	}

	text, err := Encode(rec, actual)
	if err != nil {
		return err
	}
	return WriteText(path, text)
}

// WriteText writes content to path, creating parent directories.
func WriteText(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
