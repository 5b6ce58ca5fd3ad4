package object

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

func TestDecodeUpgradePlannerResolvesMapperByIndexAndPlaceholder(t *testing.T) {
	classes := prototype.DefaultClassTable()
	idx := prototype.NewIndex(classes)
	if err := idx.Add("container", 3, "steel-chest"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	vctx := version.NewContext()

	buf := []byte{
		0x00, 0x00, // label, description
		0x00, 0x00, // icons: no placeholders, no icons

		0x01,                                         // mapper placeholder count8 = 1
		0x09, 'r', 'e', 'm', 'o', 'v', 'e', 'd', '-', 'y', // placeholder name
		0x01, // direction = to

		0x01, 0x00, 0x00, 0x00, // mapper count32 = 1

		// from: entity discriminator, known id 3 -> "steel-chest"
		0x00, 0x03, 0x00,
		// to: entity discriminator, unresolved id 0xFFFF -> falls back to placeholder
		0x00, 0xFF, 0xFF,
		0x05, 0x00, // mapper index = 5
	}

	out, err := DecodeUpgradePlanner(stream.New(buf), idx, vctx)
	if err != nil {
		t.Fatalf("DecodeUpgradePlanner: %v", err)
	}
	mappers := out["mappers"].([]interface{})
	if len(mappers) != 1 {
		t.Fatalf("expected 1 mapper, got %d", len(mappers))
	}
	m := mappers[0].(map[string]interface{})
	if m["index"] != 5 {
		t.Fatalf("unexpected index: %v", m["index"])
	}
	from := m["from"].(map[string]interface{})
	if from["name"] != "steel-chest" || from["type"] != "entity" {
		t.Fatalf("unexpected from endpoint: %+v", from)
	}
	to := m["to"].(map[string]interface{})
	if to["name"] != "removed-y" || to["type"] != "entity" {
		t.Fatalf("unexpected to endpoint: %+v", to)
	}
}

func TestDecodeUpgradePlannerRejectsUnresolvedEndpointWithNoPlaceholder(t *testing.T) {
	classes := prototype.DefaultClassTable()
	idx := prototype.NewIndex(classes)
	vctx := version.NewContext()

	buf := []byte{
		0x00, 0x00, // label, description
		0x00, 0x00, // icons
		0x00,                   // no mapper placeholders
		0x01, 0x00, 0x00, 0x00, // mapper count32 = 1
		0x00, 0xFF, 0xFF, // from: unresolved, no placeholder available
	}

	if _, err := DecodeUpgradePlanner(stream.New(buf), idx, vctx); err == nil {
		t.Fatal("expected error for an unresolved endpoint with no placeholder")
	}
}
