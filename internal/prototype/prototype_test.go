package prototype

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/stream"
)

func TestIndexAddAndLookup(t *testing.T) {
	idx := NewIndex(DefaultClassTable())

	if err := idx.Add("container", 5, "wooden-chest"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	entry, ok := idx.Lookup(Entity, 5)
	if !ok || entry.Name != "wooden-chest" || entry.Class != "container" {
		t.Fatalf("Lookup: got (%+v, %v)", entry, ok)
	}

	if _, ok := idx.Lookup(Entity, 0); ok {
		t.Fatal("id 0 must never resolve")
	}
	if err := idx.Add("container", 5, "duplicate"); err == nil {
		t.Fatal("expected error adding a duplicate id")
	}
	if err := idx.Add("not-a-real-class", 9, "whatever"); err == nil {
		t.Fatal("expected error adding an unrecognized class")
	}
	if err := idx.Add("container", 0, "reserved"); err == nil {
		t.Fatal("expected error adding id 0")
	}
}

func TestReadTableAsymmetricTileEncoding(t *testing.T) {
	buf := []byte{
		0x02, 0x00, // class_count = 2 (count16)

		0x04, 't', 'i', 'l', 'e', // "tile"
		0x01,                          // count8 = 1
		0x03, 0x06, 'g', 'r', 'a', 's', 's', '1', // id=3 (u8), name "grass1"

		0x04, 'i', 't', 'e', 'm', // "item"
		0x00,       // literal 0x00 marker
		0x01, 0x00, // count16 = 1
		0x2a, 0x00, 0x04, 'i', 'r', 'o', 'n', // id=0x2a (u16), name "iron"
	}
	idx, err := ReadTable(stream.New(buf), DefaultClassTable())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}

	tile, ok := idx.Lookup(Tile, 3)
	if !ok || tile.Name != "grass1" {
		t.Fatalf("tile lookup: got (%+v, %v)", tile, ok)
	}
	item, ok := idx.Lookup(Item, 0x2a)
	if !ok || item.Name != "iron" {
		t.Fatalf("item lookup: got (%+v, %v)", item, ok)
	}
}

func TestKindString(t *testing.T) {
	if Item.String() != "item" || Entity.String() != "entity" {
		t.Fatalf("unexpected Kind.String() values")
	}
}
