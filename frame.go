package frameschema

import "encoding/json"

// valueKind classifies the shapes a frame property value can take.
// Classification order matters: the empty pattern wins over object handling,
// @default wins over @value, and @value wins over plain nested frames.
type valueKind int

const (
	kindEmpty            valueKind = iota // {} — match anything, value must be present
	kindLiteral                           // scalar used as a schema default
	kindArray                             // wildcard [] or one-element item template
	kindDefaultAnnotated                  // {"@default": ...} without value markers
	kindValueObject                       // {"@value": ...}
	kindNested                            // any other object: a nested frame
	kindInvalid                           // null or an unsupported host type
)

// frameValue is the tagged union over frame property values. Exactly one of
// literal/array/object is populated, per kind.
type frameValue struct {
	kind    valueKind
	literal any
	array   []any
	object  map[string]any
}

// classifyFrameValue builds the union at the dispatch boundary so the
// property dispatcher can switch exhaustively instead of duck-typing.
func classifyFrameValue(v any) frameValue {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 0 {
			return frameValue{kind: kindEmpty}
		}
		if _, ok := t["@default"]; ok && !hasValueMarker(t) {
			return frameValue{kind: kindDefaultAnnotated, object: t}
		}
		if _, ok := t["@value"]; ok {
			return frameValue{kind: kindValueObject, object: t}
		}
		return frameValue{kind: kindNested, object: t}
	case []any:
		return frameValue{kind: kindArray, array: t}
	case string, bool, int, int32, int64, float32, float64, json.Number:
		return frameValue{kind: kindLiteral, literal: t}
	}
	return frameValue{kind: kindInvalid}
}

// hasValueMarker reports whether the object carries any of the keywords that
// disqualify an @default annotation from plain-default treatment.
func hasValueMarker(obj map[string]any) bool {
	for _, k := range []string{"@value", "@type", "@id"} {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}
