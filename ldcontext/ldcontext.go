// Package ldcontext resolves type coercions and container declarations from
// JSON-LD contexts into the flat property→type view the converter consumes.
//
// Expansion of compact IRIs is delegated to an Expander. PrefixExpander is a
// dependency-free local resolver; plug in expand/jsongold for a full JSON-LD
// processor.
package ldcontext

import (
	"fmt"
	"strings"
)

// Expander is the narrow slice of a JSON-LD processor the resolver needs:
// given a context and a property key, report the canonical @type URI the
// context coerces that property to. An empty string means no coercion.
type Expander interface {
	ExpandContextType(context any, key string) (string, error)
}

// Kind tags what a context definition told us about a property.
type Kind int

const (
	// KindNone records a property definition without usable type information.
	KindNone Kind = iota
	// KindType records an expanded type URI (or a keyword token such as @id).
	KindType
	// KindContainer records a container declaration (@set, @list, @index, @language).
	KindContainer
)

// TypeInfo is the resolved information for one property. The zero value
// reads as "no coercion known".
type TypeInfo struct {
	Kind  Kind
	Value string
}

// Map associates frame property names with resolved type information.
// Missing keys read as the zero TypeInfo.
type Map map[string]TypeInfo

// Resolve walks a context value and extracts type/container information for
// every expanded term definition. Plain string entries are IRI aliases and
// carry no type information. A list context merges left to right with later
// definitions winning.
//
// Resolution never fails: a property whose coercion cannot be expanded is
// recorded as KindNone and a context of an unsupported shape contributes
// nothing. Returned warnings describe what degraded.
func Resolve(context any, exp Expander) (Map, []string) {
	out := Map{}
	var warns []string
	resolveInto(context, exp, out, &warns)
	return out, warns
}

func resolveInto(context any, exp Expander, out Map, warns *[]string) {
	switch ctx := context.(type) {
	case map[string]any:
		for key, value := range ctx {
			if strings.HasPrefix(key, "@") {
				continue
			}
			def, ok := value.(map[string]any)
			if !ok {
				// Plain IRI alias or prefix definition: no type information.
				continue
			}
			if cv, ok := def["@container"]; ok {
				token, ok := cv.(string)
				if !ok {
					out[key] = TypeInfo{}
					*warns = append(*warns, fmt.Sprintf("ldcontext: %s: non-string @container (%T)", key, cv))
					continue
				}
				out[key] = TypeInfo{Kind: KindContainer, Value: token}
				continue
			}
			if _, ok := def["@type"]; ok {
				uri, err := exp.ExpandContextType(ctx, key)
				if err != nil {
					out[key] = TypeInfo{}
					*warns = append(*warns, fmt.Sprintf("ldcontext: %s: %v", key, err))
					continue
				}
				if uri == "" {
					out[key] = TypeInfo{}
					continue
				}
				out[key] = TypeInfo{Kind: KindType, Value: uri}
				continue
			}
			out[key] = TypeInfo{}
		}
	case []any:
		for _, sub := range ctx {
			resolveInto(sub, exp, out, warns)
		}
	case nil, string:
		// Nothing local to resolve. Remote context fetching is the
		// expansion engine's business, not the resolver's.
	default:
		*warns = append(*warns, fmt.Sprintf("ldcontext: unsupported context shape %T", context))
	}
}

// PrefixExpander resolves @type coercions using only the local context:
// prefix definitions ("xsd": "http://...#"), term aliases, @vocab, and
// absolute IRIs. Keyword tokens such as @id are reported as "no coercion",
// matching how a full processor expands a probe document (the coerced value
// becomes an @id node, not a typed literal).
type PrefixExpander struct{}

// ExpandContextType implements Expander.
func (PrefixExpander) ExpandContextType(context any, key string) (string, error) {
	ctx, ok := context.(map[string]any)
	if !ok {
		return "", fmt.Errorf("ldcontext: unsupported context shape %T", context)
	}
	def, _ := ctx[key].(map[string]any)
	if def == nil {
		return "", nil
	}
	t, _ := def["@type"].(string)
	if t == "" {
		return "", nil
	}
	return expandIRI(ctx, t, map[string]bool{})
}

// expandIRI expands a compact IRI or bare term against local definitions.
// Keyword tokens expand to "" (see PrefixExpander). seen tracks the terms
// already visited on this chain; a cyclic alias definition is an error, which
// Resolve degrades to KindNone.
func expandIRI(ctx map[string]any, value string, seen map[string]bool) (string, error) {
	if strings.HasPrefix(value, "@") {
		return "", nil
	}
	if seen[value] {
		return "", fmt.Errorf("ldcontext: cyclic term definition at %q", value)
	}
	seen[value] = true
	if i := strings.Index(value, ":"); i > 0 {
		prefix, suffix := value[:i], value[i+1:]
		if strings.HasPrefix(suffix, "//") {
			// Already an absolute IRI.
			return value, nil
		}
		if base, ok := ctx[prefix].(string); ok {
			return base + suffix, nil
		}
		return value, nil
	}
	if alias, ok := ctx[value].(string); ok {
		return expandIRI(ctx, alias, seen)
	}
	if def, ok := ctx[value].(map[string]any); ok {
		if id, _ := def["@id"].(string); id != "" {
			return expandIRI(ctx, id, seen)
		}
	}
	if vocab, ok := ctx["@vocab"].(string); ok {
		return vocab + value, nil
	}
	return value, nil
}
