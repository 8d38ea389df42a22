package jsongold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldkit/frameschema/expand/jsongold"
)

func TestExpandContextType_Coercion(t *testing.T) {
	ctx := map[string]any{
		"xsd": "http://www.w3.org/2001/XMLSchema#",
		"age": map[string]any{"@id": "http://example.org/vocab#age", "@type": "xsd:integer"},
	}
	got, err := jsongold.New().ExpandContextType(ctx, "age")
	require.NoError(t, err)
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#integer", got)
}

func TestExpandContextType_IDCoercionReportsNone(t *testing.T) {
	ctx := map[string]any{
		"homepage": map[string]any{"@id": "http://example.org/vocab#homepage", "@type": "@id"},
	}
	got, err := jsongold.New().ExpandContextType(ctx, "homepage")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpandContextType_NoCoercion(t *testing.T) {
	ctx := map[string]any{
		"name": map[string]any{"@id": "http://example.org/vocab#name"},
	}
	got, err := jsongold.New().ExpandContextType(ctx, "name")
	require.NoError(t, err)
	assert.Empty(t, got)
}
