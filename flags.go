package frameschema

// Flags is the resolved set of framing flags in effect at one frame node.
// Embed stays any because JSON-LD 1.1 permits both booleans and the keyword
// tokens "@always", "@never" and "@link".
//
// Each recursive call receives its own Flags value; nothing is shared or
// mutated across nodes.
type Flags struct {
	Embed       any
	Explicit    bool
	RequireAll  bool
	OmitDefault bool
}

// defaultFlags are the root-level framing defaults.
func defaultFlags() Flags {
	return Flags{Embed: true}
}

// resolveFlags computes the flags for a frame node: the node's own keyword
// value when present, otherwise the parent's resolved value.
func (c *converter) resolveFlags(frame map[string]any, parent Flags) Flags {
	out := parent
	if v, ok := frame["@embed"]; ok {
		out.Embed = v
	}
	out.Explicit = c.boolFlag(frame, "@explicit", parent.Explicit)
	out.RequireAll = c.boolFlag(frame, "@requireAll", parent.RequireAll)
	out.OmitDefault = c.boolFlag(frame, "@omitDefault", parent.OmitDefault)
	return out
}

func (c *converter) boolFlag(frame map[string]any, key string, parent bool) bool {
	v, ok := frame[key]
	if !ok {
		return parent
	}
	b, ok := v.(bool)
	if !ok {
		c.diag.warnf("frameschema: %s: expected boolean, got %T; inheriting", key, v)
		return parent
	}
	return b
}

// embedsReference reports whether the resolved embed flag suppresses
// expansion of a nested frame in favor of a node reference.
func embedsReference(embed any) bool {
	return embed == false || embed == "@never"
}
