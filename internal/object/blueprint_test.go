package object

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

func TestDecodeBlueprintSkippableSkipsAndSeeksPastDeclaredSize(t *testing.T) {
	classes := prototype.DefaultClassTable()
	idx := prototype.NewIndex(classes)
	vctx := version.NewContext()

	// label "b" + literal 0x00 + has_removed_mods=false + content_size=2
	// (VarCount, single byte since < 0xFF) + 2 garbage bytes that are nowhere
	// near a complete, valid blueprint body + trailing sentinel byte so a
	// test failure (seeking to the wrong offset) is easy to spot.
	buf := []byte{
		0x01, 'b', // label "b"
		0x00,       // post-label literal
		0x00,       // has_removed_mods = false
		0x02,       // content_size = 2
		0xFF, 0xFF, // 2 garbage content bytes (not a valid version+body)
		0xAB, // sentinel marking "past the declared content"
	}

	r := stream.New(buf)
	body, skipped, err := DecodeBlueprintSkippable(r, idx, classes, vctx, true)
	if err != nil {
		t.Fatalf("DecodeBlueprintSkippable: %v", err)
	}
	if !skipped {
		t.Fatal("expected the malformed blueprint to be skipped")
	}
	if body != nil {
		t.Fatalf("expected nil body for a skipped blueprint, got %+v", body)
	}
	if want := int64(7); r.Tell() != want {
		t.Fatalf("expected stream to seek past the declared content (offset %d), got %d", want, r.Tell())
	}
}

func TestDecodeBlueprintSkippablePropagatesErrorWhenNotSkipBad(t *testing.T) {
	classes := prototype.DefaultClassTable()
	idx := prototype.NewIndex(classes)
	vctx := version.NewContext()

	buf := []byte{
		0x01, 'b',
		0x00,
		0x00,
		0x02,
		0xFF, 0xFF,
	}

	_, _, err := DecodeBlueprintSkippable(stream.New(buf), idx, classes, vctx, false)
	if err == nil {
		t.Fatal("expected a parse error when skipBad is false")
	}
}
