package frameschema

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/ldkit/frameschema/jsonschema"
	"github.com/ldkit/frameschema/ldcontext"
)

const xsd = "http://www.w3.org/2001/XMLSchema#"

// languageTagPattern matches two-letter language codes with an optional
// region subtag (en, en-US).
const languageTagPattern = `^[a-z]{2}(-[A-Z]{2})?$`

// typeSchemas maps expanded type URIs to their JSON Schema projection.
// Entries are value types: callers must take a copy before mutating, so that
// attaching a default never writes through to this shared table.
//
// The "@id" entry is only reachable through an Expander that reports the
// keyword token verbatim; the stock expanders report no coercion for it.
var typeSchemas = map[string]jsonschema.Schema{
	"@id":            {Type: "string", Format: "uri"},
	xsd + "string":   {Type: "string"},
	xsd + "integer":  {Type: "integer"},
	xsd + "int":      {Type: "integer"},
	xsd + "long":     {Type: "integer"},
	xsd + "boolean":  {Type: "boolean"},
	xsd + "double":   {Type: "number"},
	xsd + "float":    {Type: "number"},
	xsd + "decimal":  {Type: "number"},
	xsd + "dateTime": {Type: "string", Format: "date-time"},
	xsd + "date":     {Type: "string", Format: "date"},
	xsd + "time":     {Type: "string", Format: "time"},
}

// translateTypeConstraint maps a frame @type value to its schema fragment.
// The second result reports whether the value is a wildcard (empty object or
// empty array), which exempts @type from the required list.
func translateTypeConstraint(v any) (*jsonschema.Schema, bool) {
	switch t := v.(type) {
	case string:
		return &jsonschema.Schema{Const: t}, false
	case []any:
		switch len(t) {
		case 0:
			return &jsonschema.Schema{Type: "string"}, true
		case 1:
			return &jsonschema.Schema{Const: t[0]}, false
		default:
			return &jsonschema.Schema{Enum: append([]any(nil), t...)}, false
		}
	case map[string]any:
		return &jsonschema.Schema{Type: "string"}, len(t) == 0
	}
	return &jsonschema.Schema{Type: "string"}, false
}

// translateIDConstraint maps a frame @id value to its schema fragment. The
// second result reports whether @id lands in required: a wildcard {} admits
// nodes without an identifier, unlike every concrete @id pattern.
func translateIDConstraint(v any) (*jsonschema.Schema, bool) {
	switch t := v.(type) {
	case string:
		return &jsonschema.Schema{Const: t}, true
	case map[string]any:
		if len(t) == 0 {
			return &jsonschema.Schema{Type: "string", Format: "uri"}, false
		}
		if inner, ok := t["@id"]; ok {
			s, _ := translateIDConstraint(inner)
			return s, true
		}
	}
	return &jsonschema.Schema{Type: "string", Format: "uri"}, true
}

// schemaFromTypeInfo projects resolved context information onto a schema
// fragment. It returns a fresh value on every call and never hands out
// entries of the shared type table.
func schemaFromTypeInfo(info ldcontext.TypeInfo) *jsonschema.Schema {
	switch info.Kind {
	case ldcontext.KindContainer:
		return containerSchema(info.Value)
	case ldcontext.KindType:
		if tmpl, ok := typeSchemas[info.Value]; ok {
			s := tmpl
			return &s
		}
	}
	return &jsonschema.Schema{Type: "string"}
}

// containerSchema maps a container token to its collection shape. Unknown
// tokens degrade to a plain string schema.
func containerSchema(token string) *jsonschema.Schema {
	switch token {
	case "@language":
		return &jsonschema.Schema{OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{
				Type: "object",
				PatternProperties: map[string]*jsonschema.Schema{
					languageTagPattern: {Type: "string"},
				},
				AdditionalProperties: false,
			},
		}}
	case "@index":
		return &jsonschema.Schema{
			Type:                 "object",
			AdditionalProperties: &jsonschema.Schema{Type: "string"},
		}
	case "@set":
		return &jsonschema.Schema{Type: "array", UniqueItems: true}
	case "@list":
		return &jsonschema.Schema{Type: "array"}
	}
	return &jsonschema.Schema{Type: "string"}
}

// valueObjectSchema admits either a bare string literal or an expanded value
// object. A literal @language/@type in the frame pins that keyword with
// const; an empty pattern leaves it an unconstrained string.
func valueObjectSchema(obj map[string]any) *jsonschema.Schema {
	vo := &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{"@value": {}},
		Required:   []string{"@value"},
	}
	for _, key := range []string{"@language", "@type"} {
		c, ok := obj[key]
		if !ok {
			continue
		}
		switch t := c.(type) {
		case string:
			vo.Properties[key] = &jsonschema.Schema{Const: t}
		case map[string]any:
			if len(t) == 0 {
				vo.Properties[key] = &jsonschema.Schema{Type: "string"}
			}
		}
	}
	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "string"}, vo}}
}

// inferJSONType names the JSON type of a literal. json.Number keeps the
// integer/number distinction of the source text; bare float64 values (the
// default decoding of JSON numbers) fall back to a whole-value check.
func inferJSONType(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int32, int64:
		return "integer"
	case float32:
		if float64(t) == math.Trunc(float64(t)) {
			return "integer"
		}
		return "number"
	case float64:
		if t == math.Trunc(t) {
			return "integer"
		}
		return "number"
	case json.Number:
		if strings.ContainsAny(t.String(), ".eE") {
			return "number"
		}
		return "integer"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "string"
}
