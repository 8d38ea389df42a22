package jsonschema

// Schema is a minimal JSON Schema representation covering the keywords the
// frame converter emits. Keep this struct small and extend incrementally.
//
// A zero Schema marshals to {}, the empty schema that matches anything.
type Schema struct {
	// Document envelope
	Version string `json:"$schema,omitempty"`

	// Core
	Type    string `json:"type,omitempty"`
	Format  string `json:"format,omitempty"`
	Const   any    `json:"const,omitempty"`
	Enum    []any  `json:"enum,omitempty"`
	Default *any   `json:"default,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	PatternProperties    map[string]*Schema `json:"patternProperties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items       *Schema `json:"items,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// SetDefault attaches a default value. Defaults are boxed behind a pointer so
// falsy values (false, 0, "") survive omitempty.
func (s *Schema) SetDefault(v any) { s.Default = &v }
