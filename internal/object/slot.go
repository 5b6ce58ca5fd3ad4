package object

import (
	"github.com/ernie/blueprint-decoder/internal/monitor"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// slotKind describes one of the four library/book object kinds a slot may
// hold (spec.md §3 "Library slot", §6 "Slot").
type slotKind struct {
	itemClass string // expected prototype class of the slot's item_id
	outputKey string // wrapper key in the object's output (matches the game's own export shape)
}

// slotKinds is indexed by the wire kind_tag byte (spec.md §6 "Slot").
var slotKinds = []slotKind{
	{"blueprint", "blueprint"},
	{"blueprint-book", "blueprint_book"},
	{"deconstruction-item", "deconstruction_planner"},
	{"upgrade-item", "upgrade_planner"},
}

// ParseLibraryObjects reads count consecutive slots, dispatching each
// occupied slot to its object decoder by kind_tag (spec.md §4.F "F iterates
// library slots, dispatching to E by prototype kind", §4.E "Blueprint-book
// ... Recursion through parse_library_objects is the shared dispatch").
// Free slots are omitted from the result; each occupied slot is wrapped as
// {"index": i, <kind>: body}, matching the game's own slot-list shape.
//
// When skipBad is true, a blueprint slot whose body fails to parse is
// omitted (not returned as an error) and *skipped is incremented (spec.md
// §4.D "Failure semantics", §9 "Skip-bad recovery"); every other slot kind
// still fails the whole parse on error, matching spec.md's "skippable ...
// any exception thrown inside a single blueprint body" (blueprint bodies
// only).
func ParseLibraryObjects(r *stream.Reader, idx *prototype.Index, classes prototype.ClassTable, vctx *version.Context, count int, skipBad bool, skipped *int) ([]interface{}, error) {
	return ParseLibraryObjectsMonitored(r, idx, classes, vctx, count, skipBad, skipped, nil)
}

// ParseLibraryObjectsMonitored is ParseLibraryObjects plus an optional
// events channel the caller (ultimately cmd/blueprintdecode's -watch mode)
// can observe for per-slot progress (spec.md §4.J). events may be nil.
func ParseLibraryObjectsMonitored(r *stream.Reader, idx *prototype.Index, classes prototype.ClassTable, vctx *version.Context, count int, skipBad bool, skipped *int, events chan<- monitor.Event) ([]interface{}, error) {
	out := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		used, err := r.Bool()
		if err != nil {
			return nil, err
		}
		if !used {
			continue
		}
		monitor.Send(events, monitor.Event{Kind: monitor.SlotStarted, Index: i, Total: count})

		tagOffset := r.Tell()
		tag, err := r.U8()
		if err != nil {
			return nil, err
		}
		if int(tag) >= len(slotKinds) {
			return nil, &stream.ParseError{Offset: tagOffset, Message: "unknown slot kind tag"}
		}
		kind := slotKinds[tag]

		if _, err := r.U32(); err != nil { // generation, not surfaced
			return nil, err
		}
		itemOffset := r.Tell()
		itemID, err := r.U16()
		if err != nil {
			return nil, err
		}
		entry, ok := idx.Lookup(prototype.Item, uint32(itemID))
		if !ok || entry.Class != kind.itemClass {
			return nil, &stream.ParseError{Offset: itemOffset, Message: "slot item_id does not classify to the slot's kind"}
		}

		var body map[string]interface{}
		switch tag {
		case 0:
			var wasSkipped bool
			body, wasSkipped, err = DecodeBlueprintSkippable(r, idx, classes, vctx, skipBad)
			if wasSkipped {
				*skipped++
				monitor.Send(events, monitor.Event{Kind: monitor.SlotSkipped, Index: i, Total: count})
				continue
			}
		case 1:
			body, err = DecodeBlueprintBook(r, idx, classes, vctx, skipBad, skipped)
		case 2:
			body, err = DecodeDeconstructionPlanner(r, idx, vctx)
		case 3:
			body, err = DecodeUpgradePlanner(r, idx, vctx)
		}
		if err != nil {
			return nil, err
		}
		monitor.Send(events, monitor.Event{Kind: monitor.SlotDecoded, Index: i, Total: count})

		out = append(out, map[string]interface{}{
			"index":        i,
			kind.outputKey: body,
		})
	}
	return out, nil
}
