// Package frameio loads frame documents from JSON or YAML sources and
// renders schema documents back to JSON.
package frameio

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format identifies the wire encoding of a frame document.
type Format int

const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("frameio: unknown format %q", s)
}

// DetectFormat picks a format from the file extension, falling back to a
// content sniff: JSON documents open with '{' or '['.
func DetectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonld":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses a frame document. JSON numbers decode as json.Number so
// integer and floating literals keep their spelling for type inference.
func Decode(data []byte, format Format, path string) (map[string]any, error) {
	if format == FormatAuto {
		format = DetectFormat(path, data)
	}
	if format == FormatYAML {
		return decodeYAML(data)
	}
	return decodeJSON(data)
}

func decodeJSON(data []byte) (map[string]any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var frame map[string]any
	if err := dec.Decode(&frame); err != nil {
		return nil, fmt.Errorf("frameio: invalid JSON: %w", err)
	}
	return frame, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("frameio: invalid YAML: %w", err)
	}
	frame := anyToStringMap(node)
	if frame == nil {
		return nil, fmt.Errorf("frameio: YAML document is not a mapping")
	}
	return frame, nil
}

// Encode renders a document as JSON. compact (or a non-positive indent)
// gives single-line output.
func Encode(v any, indent int, compact bool) ([]byte, error) {
	if compact || indent <= 0 {
		return gojson.Marshal(v)
	}
	return gojson.MarshalIndent(v, "", strings.Repeat(" ", indent))
}

// anyToStringMap normalizes a decoded YAML mapping into the map[string]any
// tree the converter consumes. yaml.v3 already produces map[string]any for
// string-keyed mappings; map[any]any shows up for other key kinds and those
// keys are dropped.
func anyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalize(val)
		}
		return out
	}
	return nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return anyToStringMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	}
	return v
}
