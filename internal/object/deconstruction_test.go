package object

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

func TestDecodeDeconstructionPlannerMinimal(t *testing.T) {
	classes := prototype.DefaultClassTable()
	idx := prototype.NewIndex(classes)
	vctx := version.NewContext()

	buf := []byte{
		0x00, // label ""
		0x00, // description ""

		0x00, // icons: placeholder count8 = 0
		0x00, // icons: icon count8 = 0

		0x00, // entity_filter_mode index 0 = "whitelist"
		0x00, // entity filters: placeholder count8 = 0
		0x00, 0x00, 0x00, 0x00, // entity filters: count32 = 0

		0x00, // trees_and_rocks_only = false

		0x01, // tile_filter_mode index 1 = "blacklist"
		0x03, // tile_selection_mode index 3 = "only"
		0x00, // tile filters: placeholder count8 = 0
		0x00, 0x00, 0x00, 0x00, // tile filters: count32 = 0
	}

	out, err := DecodeDeconstructionPlanner(stream.New(buf), idx, vctx)
	if err != nil {
		t.Fatalf("DecodeDeconstructionPlanner: %v", err)
	}
	if out["entity_filter_mode"] != "whitelist" || out["tile_filter_mode"] != "blacklist" || out["tile_selection_mode"] != "only" {
		t.Fatalf("unexpected modes: %+v", out)
	}
	for _, absentKey := range []string{"icons", "entity_filters", "trees_and_rocks_only", "tile_filters"} {
		if _, present := out[absentKey]; present {
			t.Fatalf("expected %q to be suppressed, got %v", absentKey, out[absentKey])
		}
	}
}

func TestDecodeDeconstructionPlannerResolvesFilterByPlaceholderWhenIDUnknown(t *testing.T) {
	classes := prototype.DefaultClassTable()
	idx := prototype.NewIndex(classes)
	vctx := version.NewContext()

	buf := []byte{
		0x00, // label
		0x00, // description
		0x00, 0x00, // icons

		0x00, // entity_filter_mode

		0x01,                          // entity filters: placeholder count8 = 1
		0x09, 'r', 'e', 'm', 'o', 'v', 'e', 'd', '-', 'x', // placeholder name "removed-x"
		0x01, 0x00, 0x00, 0x00, // entity filters count32 = 1
		0x00, 0x00, // index = 0
		0xFF, 0xFF, // id = 0xFFFF, unresolved -> falls back to placeholder

		0x00, // trees_and_rocks_only
		0x00, 0x03, // tile_filter_mode, tile_selection_mode
		0x00, 0x00, 0x00, 0x00, 0x00, // tile filters: empty
	}

	out, err := DecodeDeconstructionPlanner(stream.New(buf), idx, vctx)
	if err != nil {
		t.Fatalf("DecodeDeconstructionPlanner: %v", err)
	}
	filters := out["entity_filters"].([]interface{})
	if len(filters) != 1 {
		t.Fatalf("expected 1 entity filter, got %d", len(filters))
	}
	f := filters[0].(map[string]interface{})
	if f["name"] != "removed-x" || f["index"] != 0 {
		t.Fatalf("unexpected filter: %+v", f)
	}
}
