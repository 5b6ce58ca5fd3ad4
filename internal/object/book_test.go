package object

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

func TestDecodeBlueprintBookWithOneUpgradePlannerSlot(t *testing.T) {
	classes := prototype.DefaultClassTable()
	idx := prototype.NewIndex(classes)
	if err := idx.Add("upgrade-item", 9, "upgrade-planner"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	vctx := version.NewContext()

	buf := []byte{
		0x00, 0x00, // book label, description
		0x00, 0x00, // book icons: none

		0x01, 0x00, 0x00, 0x00, // slot count32 = 1

		0x01,                   // slot used = true
		0x03,                   // kind tag 3 = upgrade-item
		0x00, 0x00, 0x00, 0x00, // generation, ignored
		0x09, 0x00, // item_id = 9 -> "upgrade-planner"

		// nested upgrade-planner body:
		0x00, 0x00, // label, description
		0x00, 0x00, // icons
		0x00,                   // mapper placeholder count8 = 0
		0x00, 0x00, 0x00, 0x00, // mapper count32 = 0

		0x02, // active_index = 2
		0x00, // trailing literal
	}

	var skipped int
	out, err := DecodeBlueprintBook(stream.New(buf), idx, classes, vctx, false, &skipped)
	if err != nil {
		t.Fatalf("DecodeBlueprintBook: %v", err)
	}
	if out["active_index"] != 2 {
		t.Fatalf("unexpected active_index: %v", out["active_index"])
	}
	slots := out["blueprints"].([]interface{})
	if len(slots) != 1 {
		t.Fatalf("expected 1 occupied slot, got %d", len(slots))
	}
	slot := slots[0].(map[string]interface{})
	if slot["index"] != 0 {
		t.Fatalf("unexpected slot index: %v", slot["index"])
	}
	if _, ok := slot["upgrade_planner"]; !ok {
		t.Fatalf("expected slot wrapped under upgrade_planner, got %+v", slot)
	}
	if skipped != 0 {
		t.Fatalf("expected 0 skipped, got %d", skipped)
	}
}

func TestDecodeBlueprintBookSkipsEmptySlots(t *testing.T) {
	classes := prototype.DefaultClassTable()
	idx := prototype.NewIndex(classes)
	vctx := version.NewContext()

	buf := []byte{
		0x00, 0x00, // label, description
		0x00, 0x00, // icons
		0x02, 0x00, 0x00, 0x00, // slot count32 = 2
		0x00, // slot 0: unused
		0x00, // slot 1: unused
		0x00, // active_index
		0x00, // trailing literal
	}

	var skipped int
	out, err := DecodeBlueprintBook(stream.New(buf), idx, classes, vctx, false, &skipped)
	if err != nil {
		t.Fatalf("DecodeBlueprintBook: %v", err)
	}
	if _, present := out["blueprints"]; present {
		t.Fatalf("expected no blueprints key when all slots are empty, got %v", out["blueprints"])
	}
}
