// Package library implements the top-level library-file decoder (spec.md
// §4.F): version, migrations, the global prototype index, the generation
// counter and timestamp, and the slot list, presented on output as a
// synthetic blueprint-book.
package library

import (
	"fmt"
	"time"

	"github.com/ernie/blueprint-decoder/internal/monitor"
	"github.com/ernie/blueprint-decoder/internal/object"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// Result is the outcome of decoding one library file.
type Result struct {
	// Book is the synthetic blueprint-book output: {label, description,
	// blueprints, ...} per spec.md §4.F "the library is presented as a
	// synthetic blueprint-book carrying the timestamp, generation, and
	// filename in its description".
	Book map[string]interface{}
	// Skipped counts blueprint slots dropped by skip-bad recovery.
	Skipped int
}

// Decode parses one library file. filename is used only to build the
// synthetic book's description; classes lets a deployment extend the
// vanilla prototype-class classification table (spec.md §4.B). When
// skipBad is true, a blueprint slot that fails to parse is dropped and
// counted instead of aborting the whole decode (spec.md §4.F, §9 "Skip-bad
// recovery").
// events, if non-nil, receives per-slot progress notifications as the slot
// list decodes (spec.md §4.J); the decoder never blocks on it.
func Decode(r *stream.Reader, filename string, classes prototype.ClassTable, skipBad bool, events chan<- monitor.Event) (*Result, error) {
	v, err := version.Read(r)
	if err != nil {
		return nil, err
	}
	vctx := version.NewContext()
	restore := vctx.Push(v)
	defer restore()

	if err := r.Expect(0x00); err != nil {
		return nil, err
	}
	if _, err := object.ReadMigrations(r); err != nil {
		return nil, err
	}

	idx, err := prototype.ReadTable(r, classes)
	if err != nil {
		return nil, err
	}

	if _, err := r.U8(); err != nil { // library state: read and ignored (spec.md §9 "Open questions")
		return nil, err
	}
	if err := r.Expect(0x00); err != nil {
		return nil, err
	}
	generation, err := r.U32()
	if err != nil {
		return nil, err
	}
	timestamp, err := r.U32()
	if err != nil {
		return nil, err
	}
	if err := r.Expect(0x01); err != nil {
		return nil, err
	}

	slotCount, err := r.Count32()
	if err != nil {
		return nil, err
	}

	var skipped int
	blueprints, err := object.ParseLibraryObjectsMonitored(r, idx, classes, vctx, slotCount, skipBad, &skipped, events)
	if err != nil {
		return nil, err
	}
	monitor.Send(events, monitor.Event{Kind: monitor.RunComplete, Total: slotCount, Skipped: skipped})

	book := map[string]interface{}{
		"label":       "",
		"description": describeLibrary(filename, generation, timestamp),
		"item":        "blueprint-book",
		"version":     v.String(),
	}
	if len(blueprints) > 0 {
		book["blueprints"] = blueprints
	}

	return &Result{Book: book, Skipped: skipped}, nil
}

// describeLibrary renders the filename, generation counter, and timestamp
// into the synthetic book's description field, since a library file has no
// label or description fields of its own to carry them.
func describeLibrary(filename string, generation, timestamp uint32) string {
	t := time.Unix(int64(timestamp), 0).UTC()
	return fmt.Sprintf("%s (generation %d, saved %s)", filename, generation, t.Format(time.RFC3339))
}
