package library

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

func TestDecodeEmptyLibrary(t *testing.T) {
	buf := []byte{
		0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, // version 1.1.0.0
		0x00,       // post-version literal
		0x00,       // migrations count8 = 0
		0x00, 0x00, // prototype table class_count16 = 0
		0x07,       // library-state byte, ignored
		0x00,       // post-library-state literal
		0x2a, 0x00, 0x00, 0x00, // generation = 42
		0x00, 0x00, 0x00, 0x00, // timestamp = 0
		0x01,                   // expect 0x01
		0x00, 0x00, 0x00, 0x00, // slot count32 = 0
	}

	result, err := Decode(stream.New(buf), "test.dat", prototype.DefaultClassTable(), false, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Skipped != 0 {
		t.Fatalf("expected 0 skipped, got %d", result.Skipped)
	}
	if result.Book["item"] != "blueprint-book" {
		t.Fatalf("expected synthetic blueprint-book item tag, got %+v", result.Book["item"])
	}
	if _, present := result.Book["blueprints"]; present {
		t.Fatal("expected no blueprints key for an empty slot list")
	}
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	buf := []byte{0x01, 0x00} // incomplete version
	if _, err := Decode(stream.New(buf), "short.dat", prototype.DefaultClassTable(), false, nil); err == nil {
		t.Fatal("expected error decoding a truncated header")
	}
}
