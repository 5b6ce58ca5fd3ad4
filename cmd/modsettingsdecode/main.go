// Command modsettingsdecode decodes mod-settings.dat: a version header
// followed by a single property-tree dictionary of mod name to setting
// value (SPEC_FULL.md §1 "Sibling utilities").
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: modsettingsdecode <mod-settings.dat>")
		os.Exit(2)
	}

	buf, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	r := stream.New(buf)
	v, err := version.Read(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := r.Expect(0x00); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tree, err := fields.ReadPropertyTree(r)
	if err != nil {
		if pe, ok := err.(*stream.ParseError); ok {
			fmt.Fprintf(os.Stderr, "parse error at offset %d: %s\n", pe.Offset, pe.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	out := map[string]interface{}{
		"version":  v.String(),
		"settings": tree,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
