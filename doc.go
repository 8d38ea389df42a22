package frameschema

// Package frameschema converts JSON-LD 1.1 frame documents into JSON Schema
// documents that validate data shaped by those frames.
//
// - Convert is the single entry point; Options selects the $schema version,
//   graph-only output and the JSON-LD expansion collaborator.
// - The output model lives in jsonschema; context resolution in ldcontext;
//   a full JSON-LD expander in expand/jsongold; document loading in frameio;
//   the CLI under cmd/frameschema.
//
// Design policy:
// - Keep only public APIs in the root package.
// - Conversion is pure and deterministic: no I/O, no retained state, frame
//   keys processed in sorted order.
// - Frame content never raises: malformed pieces degrade to weaker schemas
//   and surface as Diag warnings.
//
// Known limitations, preserved deliberately:
// - An @type: "@id" coercion in the context is not translated to a uri
//   format constraint; the property degrades to a plain string schema.
// - A wildcard @id ({}) does not force @id into required, while concrete
//   @id patterns do. Wildcard @type behaves the same way ({} and [] are
//   both exempt).
// - A numeric frame literal handed to Convert as a plain float64 is typed by
//   a whole-value check, so 2.0 reads as an integer. Loading frames through
//   frameio keeps the source spelling (json.Number) and types 2.0 as number.
// - Generated schemas approximate framing semantics; they do not capture
//   every nuance of the JSON-LD framing algorithm.
// - No cycle detection: a programmatically built frame that references
//   itself recurses until the stack runs out.
