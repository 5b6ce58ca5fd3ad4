package entity

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

func TestReadListDecodesOneContainerAndStopsAtTerminator(t *testing.T) {
	idx := prototype.NewIndex(prototype.DefaultClassTable())
	if err := idx.Add("container", 7, "wooden-chest"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	vctx := version.NewContext()
	restore := vctx.Push(version.Version{Major: 1, Minor: 0, Patch: 0, Build: 0})
	defer restore()

	buf := []byte{
		0x07, 0x00, // prototype id = 7

		0xFF, 0x7F, // position sentinel (absolute follows)
		0x00, 0x01, 0x00, 0x00, // x = 256 (/256 = 1.0)
		0x00, 0x02, 0x00, 0x00, // y = 512 (/256 = 2.0)

		0x20, // fixed literal
		0x10, // id-flags, bit 0x10 set
		0x01, // fixed literal
		0x01, 0x00, 0x00, 0x00, // raw entity id = 1

		// body (decodeContainer):
		0xFF, 0xFF, // bar = unset
		0x00, // circuit connections: red count = 0
		0x00, // green count = 0
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 9-byte trailer

		0x01,             // comparator index 1 = "<"
		0x00, 0x00, 0x00, // first signal: kind item, id 0 (absent)
		0x00, 0x00, 0x00, // second signal: absent
		0x00, 0x00, 0x00, 0x00, // constant = 0
		0x00, // use_constant = false
		0x00, // connect_to_logistic_network = false

		0x00, 0x00, 0x00, 0x00, // item map count32 = 0
		0x00, // has_tags = false

		0x00, 0x00, // terminator: prototype id 0
	}

	dec := NewDecoder(idx, vctx)
	entities, rawIDs, err := dec.ReadList(stream.New(buf))
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(entities))
	}
	if rawIDs[0] != 1 {
		t.Fatalf("expected raw id 1, got %d", rawIDs[0])
	}

	e := entities[0]
	if e["name"] != "wooden-chest" {
		t.Fatalf("expected name wooden-chest, got %v", e["name"])
	}
	pos := e["position"].(map[string]interface{})
	if pos["x"] != 1.0 || pos["y"] != 2.0 {
		t.Fatalf("unexpected position: %+v", pos)
	}
	for _, absentKey := range []string{"bar", "connections", "control_behavior", "items", "tags"} {
		if _, present := e[absentKey]; present {
			t.Fatalf("expected %q to be suppressed, got %v", absentKey, e[absentKey])
		}
	}
	if e["entity_id"] != uint32(1) {
		t.Fatalf("expected transient entity_id to survive ReadList (resolved later by linkresolve), got %v", e["entity_id"])
	}
}

func TestReadListRejectsUnknownPrototypeID(t *testing.T) {
	idx := prototype.NewIndex(prototype.DefaultClassTable())
	vctx := version.NewContext()
	restore := vctx.Push(version.Version{Major: 1, Minor: 0, Patch: 0, Build: 0})
	defer restore()

	buf := []byte{0x09, 0x00} // unregistered prototype id
	dec := NewDecoder(idx, vctx)
	if _, _, err := dec.ReadList(stream.New(buf)); err == nil {
		t.Fatal("expected error for an unregistered entity prototype id")
	}
}
