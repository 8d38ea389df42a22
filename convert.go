package frameschema

import (
	"sort"

	"github.com/ldkit/frameschema/jsonschema"
	"github.com/ldkit/frameschema/ldcontext"
)

// framingKeywords are frame keys that configure framing rather than match
// document properties. @type and @id are handled separately because they do
// land in the output schema.
var framingKeywords = map[string]bool{
	"@context":     true,
	"@embed":       true,
	"@explicit":    true,
	"@requireAll":  true,
	"@omitDefault": true,
	"@graph":       true,
	"@reverse":     true,
}

// converter carries the per-call state of one Convert invocation: options,
// the expansion collaborator and the warning sink. The type context and
// flags travel down the recursion by value.
type converter struct {
	opts     Options
	expander ldcontext.Expander
	diag     *simpleDiag
}

// convert assembles the output document: unwrap a @graph wrapper, resolve
// flags and the type context once at the root, process the node frame, then
// wrap the node schema in the document envelope unless GraphOnly is set.
func (c *converter) convert(frame map[string]any) *jsonschema.Schema {
	content := c.effectiveFrame(frame)

	flags := c.resolveFlags(content, defaultFlags())
	types, warns := ldcontext.Resolve(content["@context"], c.expander)
	for _, w := range warns {
		c.diag.warn(w)
	}

	node := c.processNode(content, flags, types)

	if c.opts.GraphOnly {
		node.Version = c.opts.SchemaVersion
		return node
	}
	return &jsonschema.Schema{
		Version: c.opts.SchemaVersion,
		Type:    "object",
		Properties: map[string]*jsonschema.Schema{
			"@context": {},
			"@graph":   {Type: "array", Items: node},
		},
		Required:             []string{"@context", "@graph"},
		AdditionalProperties: true,
	}
}

// effectiveFrame unwraps a top-level @graph wrapper: the first object of an
// array, or a single object. The outer @context is copied onto the unwrapped
// frame when the inner one lacks its own. The input is never written to; a
// merge allocates a fresh map.
func (c *converter) effectiveFrame(frame map[string]any) map[string]any {
	gv, ok := frame["@graph"]
	if !ok {
		return frame
	}
	var inner map[string]any
	switch t := gv.(type) {
	case []any:
		if len(t) == 0 {
			return frame
		}
		inner, ok = t[0].(map[string]any)
		if !ok {
			c.diag.warnf("frameschema: @graph: first entry is %T, not an object; matching any node", t[0])
			inner = map[string]any{}
		}
	case map[string]any:
		inner = t
	default:
		// Only object and array wrappers unwrap; anything else is ignored and
		// the outer frame keeps shaping the schema.
		c.diag.warnf("frameschema: @graph: expected object or array, got %T; ignoring", gv)
		return frame
	}
	if _, hasCtx := inner["@context"]; hasCtx {
		return inner
	}
	outerCtx, hasOuter := frame["@context"]
	if !hasOuter {
		return inner
	}
	merged := make(map[string]any, len(inner)+1)
	merged["@context"] = outerCtx
	for k, v := range inner {
		merged[k] = v
	}
	return merged
}

// processNode translates one frame object into one object schema: keyword
// constraints first, then every non-keyword property through the dispatcher.
// additionalProperties is false exactly when the node's explicit flag holds.
func (c *converter) processNode(frame map[string]any, flags Flags, types ldcontext.Map) *jsonschema.Schema {
	props := map[string]*jsonschema.Schema{}
	var required []string

	if tv, ok := frame["@type"]; ok {
		s, wildcard := translateTypeConstraint(tv)
		props["@type"] = s
		if !wildcard {
			required = append(required, "@type")
		}
	}
	if iv, ok := frame["@id"]; ok {
		s, req := translateIDConstraint(iv)
		props["@id"] = s
		if req {
			required = append(required, "@id")
		}
	}
	if rv, ok := frame["@reverse"]; ok {
		props["@reverse"] = c.reverseSchema(rv, flags, types)
		required = append(required, "@reverse")
	}

	for _, key := range propertyKeys(frame) {
		value := frame[key]
		props[key] = c.dispatchProperty(key, value, flags, types)
		if requiredProperty(value, flags) {
			required = append(required, key)
		}
	}

	node := &jsonschema.Schema{Type: "object"}
	if len(props) > 0 {
		node.Properties = props
	}
	node.Required = required
	node.AdditionalProperties = !flags.Explicit
	return node
}

// propertyKeys returns the non-keyword frame keys in sorted order. Go maps
// are unordered, so a fixed order keeps conversion deterministic.
func propertyKeys(frame map[string]any) []string {
	keys := make([]string, 0, len(frame))
	for k := range frame {
		if framingKeywords[k] || k == "@type" || k == "@id" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// requiredProperty decides whether a framed property lands in required.
// Precedence: requireAll forces membership, omitDefault forces omission,
// then empty patterns and structured values (objects, arrays) require the
// property while scalar defaults leave it optional.
func requiredProperty(value any, flags Flags) bool {
	if flags.RequireAll {
		return true
	}
	if flags.OmitDefault {
		return false
	}
	switch value.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

// dispatchProperty routes one frame property value to its translator.
func (c *converter) dispatchProperty(key string, value any, flags Flags, types ldcontext.Map) *jsonschema.Schema {
	fv := classifyFrameValue(value)
	switch fv.kind {
	case kindEmpty:
		return schemaFromTypeInfo(types[key])
	case kindLiteral:
		s := &jsonschema.Schema{Type: inferJSONType(fv.literal)}
		s.SetDefault(fv.literal)
		return s
	case kindArray:
		return c.arraySchema(fv.array, flags, types)
	case kindDefaultAnnotated:
		s := schemaFromTypeInfo(types[key])
		s.SetDefault(fv.object["@default"])
		return s
	case kindValueObject:
		return valueObjectSchema(fv.object)
	case kindNested:
		return c.nestedSchema(fv.object, flags, types)
	}
	if value != nil {
		c.diag.warnf("frameschema: %s: unsupported frame value of type %T; matching anything", key, value)
	}
	return &jsonschema.Schema{}
}

// arraySchema treats a one-element array as an item template; the wildcard
// [] admits any array.
func (c *converter) arraySchema(arr []any, flags Flags, types ldcontext.Map) *jsonschema.Schema {
	if len(arr) == 0 {
		return &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{}}
	}
	if obj, ok := arr[0].(map[string]any); ok {
		return &jsonschema.Schema{Type: "array", Items: c.nestedSchema(obj, flags, types)}
	}
	return &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: inferJSONType(arr[0])}}
}

// nestedSchema recurses into a nested frame. When the resolved embed flag is
// false or "@never" the node collapses to a reference instead of expanding
// its own properties.
func (c *converter) nestedSchema(obj map[string]any, parent Flags, types ldcontext.Map) *jsonschema.Schema {
	flags := c.resolveFlags(obj, parent)
	if embedsReference(flags.Embed) {
		return referenceSchema()
	}
	return c.processNode(obj, flags, types)
}

// referenceSchema matches a non-embedded node: either a bare IRI string or
// an object carrying only @id.
func referenceSchema() *jsonschema.Schema {
	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{
		{Type: "string", Format: "uri"},
		{
			Type:                 "object",
			Properties:           map[string]*jsonschema.Schema{"@id": {Type: "string", Format: "uri"}},
			Required:             []string{"@id"},
			AdditionalProperties: false,
		},
	}}
}

// reverseSchema builds the @reverse property map. Reverse links may appear
// singular or pluralized in framed output, so each sub-property admits both
// a single node and an array of nodes.
func (c *converter) reverseSchema(rv any, flags Flags, types ldcontext.Map) *jsonschema.Schema {
	out := &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
	obj, ok := rv.(map[string]any)
	if !ok {
		c.diag.warnf("frameschema: @reverse: expected object, got %T", rv)
		return out
	}
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sub, ok := obj[name].(map[string]any)
		if !ok {
			c.diag.warnf("frameschema: @reverse: %s: expected object frame, got %T", name, obj[name])
			out.Properties[name] = &jsonschema.Schema{}
			continue
		}
		item := c.nestedSchema(sub, flags, types)
		out.Properties[name] = &jsonschema.Schema{OneOf: []*jsonschema.Schema{
			item,
			{Type: "array", Items: item},
		}}
	}
	return out
}
