package jsonschema_test

import (
	"encoding/json"
	"testing"

	"github.com/ldkit/frameschema/jsonschema"
)

func marshal(t *testing.T, s *jsonschema.Schema) string {
	t.Helper()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestSchema_ZeroValueIsEmptySchema(t *testing.T) {
	if got := marshal(t, &jsonschema.Schema{}); got != "{}" {
		t.Fatalf("zero schema = %s, want {}", got)
	}
}

func TestSchema_FalsyDefaultSurvives(t *testing.T) {
	s := &jsonschema.Schema{Type: "boolean"}
	s.SetDefault(false)
	if got, want := marshal(t, s), `{"type":"boolean","default":false}`; got != want {
		t.Fatalf("schema = %s, want %s", got, want)
	}

	s = &jsonschema.Schema{Type: "integer"}
	s.SetDefault(0)
	if got, want := marshal(t, s), `{"type":"integer","default":0}`; got != want {
		t.Fatalf("schema = %s, want %s", got, want)
	}
}

func TestSchema_AdditionalProperties(t *testing.T) {
	s := &jsonschema.Schema{Type: "object", AdditionalProperties: false}
	if got, want := marshal(t, s), `{"type":"object","additionalProperties":false}`; got != want {
		t.Fatalf("schema = %s, want %s", got, want)
	}

	s = &jsonschema.Schema{Type: "object", AdditionalProperties: true}
	if got, want := marshal(t, s), `{"type":"object","additionalProperties":true}`; got != want {
		t.Fatalf("schema = %s, want %s", got, want)
	}

	// Unset means absent, not false.
	s = &jsonschema.Schema{Type: "object"}
	if got, want := marshal(t, s), `{"type":"object"}`; got != want {
		t.Fatalf("schema = %s, want %s", got, want)
	}

	// A schema value is legal too.
	s = &jsonschema.Schema{Type: "object", AdditionalProperties: &jsonschema.Schema{Type: "string"}}
	if got, want := marshal(t, s), `{"type":"object","additionalProperties":{"type":"string"}}`; got != want {
		t.Fatalf("schema = %s, want %s", got, want)
	}
}

func TestSchema_EnvelopeFieldOrder(t *testing.T) {
	s := &jsonschema.Schema{Version: "v", Type: "object"}
	if got, want := marshal(t, s), `{"$schema":"v","type":"object"}`; got != want {
		t.Fatalf("schema = %s, want %s", got, want)
	}
}
