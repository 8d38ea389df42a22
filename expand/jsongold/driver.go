// Package jsongold adapts the piprate/json-gold JSON-LD processor to the
// ldcontext.Expander interface.
package jsongold

import (
	"strings"

	"github.com/piprate/json-gold/ld"
)

// Expander resolves @type coercions by expanding a one-property probe
// document through json-gold and reading back the coerced @type. A property
// coerced with @type: "@id" expands to a node reference rather than a typed
// literal, so it reports no coercion.
type Expander struct {
	proc *ld.JsonLdProcessor
	opts *ld.JsonLdOptions
}

// New returns an Expander with default processor options.
func New() *Expander {
	return &Expander{
		proc: ld.NewJsonLdProcessor(),
		opts: ld.NewJsonLdOptions(""),
	}
}

// ExpandContextType implements ldcontext.Expander.
func (e *Expander) ExpandContextType(context any, key string) (string, error) {
	probe := map[string]any{"@context": context, key: "probe"}
	expanded, err := e.proc.Expand(probe, e.opts)
	if err != nil {
		return "", err
	}
	if len(expanded) == 0 {
		return "", nil
	}
	node, ok := expanded[0].(map[string]any)
	if !ok {
		return "", nil
	}
	for prop, values := range node {
		if strings.HasPrefix(prop, "@") {
			continue
		}
		vs, ok := values.([]any)
		if !ok || len(vs) == 0 {
			continue
		}
		vm, ok := vs[0].(map[string]any)
		if !ok {
			continue
		}
		if t, ok := vm["@type"].(string); ok && t != "" {
			return t, nil
		}
	}
	return "", nil
}
