package fields

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

func newIndexWithIron(t *testing.T) *prototype.Index {
	t.Helper()
	idx := prototype.NewIndex(prototype.DefaultClassTable())
	if err := idx.Add("item", 1, "iron-plate"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := idx.Add("virtual-signal", 2, "signal-A"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return idx
}

func TestReadSignalAbsentAndPresent(t *testing.T) {
	idx := newIndexWithIron(t)

	r := stream.New([]byte{0x00, 0x00, 0x00}) // kind=item, id=0 (absent)
	sig, err := ReadSignal(r, idx)
	if err != nil || sig != nil {
		t.Fatalf("expected nil signal for id 0, got (%v, %v)", sig, err)
	}

	r2 := stream.New([]byte{0x02, 0x02, 0x00}) // kind=virtual, id=2
	sig2, err := ReadSignal(r2, idx)
	if err != nil {
		t.Fatalf("ReadSignal: %v", err)
	}
	if sig2["type"] != "virtual" || sig2["name"] != "signal-A" {
		t.Fatalf("unexpected signal: %+v", sig2)
	}
}

func TestReadConditionSuppressesDefault(t *testing.T) {
	idx := newIndexWithIron(t)
	// comparator "<" (index 1), no first/second signal, constant 0, use_constant=false
	buf := []byte{
		0x01,             // comparator index 1 = "<"
		0x00, 0x00, 0x00, // first signal: kind item, id 0
		0x00, 0x00, 0x00, // second signal: kind item, id 0
		0x00, 0x00, 0x00, 0x00, // constant = 0
		0x00, // use_constant = false
	}
	cond, err := ReadCondition(stream.New(buf), idx)
	if err != nil {
		t.Fatalf("ReadCondition: %v", err)
	}
	if cond != nil {
		t.Fatalf("expected default condition to be suppressed, got %+v", cond)
	}
}

func TestReadColorSuppressesZero(t *testing.T) {
	r := stream.New(make([]byte, 16))
	c, err := ReadColor(r)
	if err != nil || c != nil {
		t.Fatalf("expected nil color for all-zero value, got (%v, %v)", c, err)
	}
}

func TestReadItemMapSumsRepeats(t *testing.T) {
	idx := newIndexWithIron(t)
	buf := []byte{
		0x02, 0x00, 0x00, 0x00, // count32 = 2

		0x01, 0x00, 0x05, 0x00, 0x00, 0x00, // item 1, count 5
		0x01, 0x00, 0x03, 0x00, 0x00, 0x00, // item 1, count 3
	}
	items, err := ReadItemMap(stream.New(buf), idx)
	if err != nil {
		t.Fatalf("ReadItemMap: %v", err)
	}
	if items["iron-plate"] != uint32(8) {
		t.Fatalf("expected summed count 8, got %v", items["iron-plate"])
	}
}

func TestReadIconsUsesPlaceholderForUnresolvedSignal(t *testing.T) {
	idx := newIndexWithIron(t)
	buf := []byte{
		0x01, 0x09, 'r', 'e', 'm', 'o', 'v', 'e', 'd', '-', 'x', // 1 placeholder: "removed-x"
		0x01,             // icon count = 1
		0x01,             // index = 1
		0x00, 0x63, 0x00, // kind=item, id=0x63 (not registered)
	}
	icons, err := ReadIcons(stream.New(buf), idx)
	if err != nil {
		t.Fatalf("ReadIcons: %v", err)
	}
	if len(icons) != 1 {
		t.Fatalf("expected 1 icon, got %d", len(icons))
	}
	icon := icons[0].(map[string]interface{})
	signal := icon["signal"].(map[string]interface{})
	if signal["name"] != "removed-x" {
		t.Fatalf("expected placeholder name substituted, got %+v", signal)
	}
}
