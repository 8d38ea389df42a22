package frameschema

import (
	"errors"
	"fmt"

	"github.com/ldkit/frameschema/jsonschema"
	"github.com/ldkit/frameschema/ldcontext"
)

// DefaultSchemaVersion is the $schema URI stamped on generated documents.
const DefaultSchemaVersion = "https://json-schema.org/draft/2020-12/schema"

// Options controls conversion behavior.
type Options struct {
	// SchemaVersion overrides the $schema URI. Empty selects
	// DefaultSchemaVersion.
	SchemaVersion string
	// GraphOnly emits the bare node schema instead of wrapping it in the
	// @context/@graph document envelope.
	GraphOnly bool
	// Expander resolves @type coercions in the frame's @context. Nil selects
	// ldcontext.PrefixExpander; expand/jsongold provides a full JSON-LD
	// processor.
	Expander ldcontext.Expander
}

// Diag carries non-fatal warnings produced during conversion.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warn(msg string)          { d.ws = append(d.ws, msg) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }

// Convert maps a JSON-LD 1.1 frame to a JSON Schema document.
//
// A frame is a loosely structured pattern, not a validated document, so
// frame content never produces an error: malformed pieces degrade to weaker
// schemas and are reported on Diag. The only error is a nil frame. Convert
// does not retain or mutate the input.
func Convert(frame map[string]any, opts Options) (*jsonschema.Schema, Diag, error) {
	d := &simpleDiag{}
	if frame == nil {
		return nil, d, errors.New("frameschema: nil frame")
	}
	if opts.SchemaVersion == "" {
		opts.SchemaVersion = DefaultSchemaVersion
	}
	exp := opts.Expander
	if exp == nil {
		exp = ldcontext.PrefixExpander{}
	}
	c := &converter{opts: opts, expander: exp, diag: d}
	return c.convert(frame), d, nil
}
