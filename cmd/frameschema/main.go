// Command frameschema converts JSON-LD 1.1 frame documents into JSON Schema
// documents. It reads a frame from a file or stdin and writes the schema to
// a file or stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ldkit/frameschema"
	"github.com/ldkit/frameschema/expand/jsongold"
	"github.com/ldkit/frameschema/frameio"
)

// CLI defines the command-line interface for frameschema.
var CLI struct {
	Input  string `arg:"" optional:"" help:"Input frame document (JSON or YAML). Reads stdin when omitted." type:"path"`
	Output string `arg:"" optional:"" help:"Output schema file. Writes stdout when omitted." type:"path"`

	SchemaVersion string `name:"schema-version" default:"${schema_version}" help:"JSON Schema version URI stamped on the output."`
	GraphOnly     bool   `name:"graph-only" help:"Emit the bare node schema without the @context/@graph envelope."`
	Format        string `enum:"auto,json,yaml" default:"auto" help:"Input format (auto detects from extension and content)."`
	Indent        int    `default:"2" help:"JSON indentation width."`
	Compact       bool   `help:"Output compact JSON (overrides --indent)."`
	Quiet         bool   `short:"q" help:"Suppress conversion warnings on stderr."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("frameschema"),
		kong.Description("Convert JSON-LD 1.1 frames to JSON Schema documents."),
		kong.Vars{"schema_version": frameschema.DefaultSchemaVersion},
	)
	ctx.FatalIfErrorf(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) error {
	data, err := readInput(stdin, CLI.Input)
	if err != nil {
		return err
	}
	format, err := frameio.ParseFormat(CLI.Format)
	if err != nil {
		return err
	}
	frame, err := frameio.Decode(data, format, CLI.Input)
	if err != nil {
		return err
	}

	schema, diag, err := frameschema.Convert(frame, frameschema.Options{
		SchemaVersion: CLI.SchemaVersion,
		GraphOnly:     CLI.GraphOnly,
		Expander:      jsongold.New(),
	})
	if err != nil {
		return err
	}
	if diag.HasWarnings() && !CLI.Quiet {
		for _, w := range diag.Warnings() {
			fmt.Fprintln(stderr, "warning:", w)
		}
	}

	out, err := frameio.Encode(schema, CLI.Indent, CLI.Compact)
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if CLI.Output == "" {
		_, err = stdout.Write(out)
		return err
	}
	if err := os.WriteFile(CLI.Output, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "Schema written to %s\n", CLI.Output)
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
