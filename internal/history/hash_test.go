package history

import "testing"

func TestContentHashDeterministicAndSensitive(t *testing.T) {
	a := ContentHash([]byte("hello"))
	b := ContentHash([]byte("hello"))
	if a != b {
		t.Fatalf("ContentHash should be deterministic: %q != %q", a, b)
	}
	if len(a) != 64 { // 32 bytes, hex-encoded
		t.Fatalf("expected 64 hex chars, got %d (%q)", len(a), a)
	}

	c := ContentHash([]byte("hellp"))
	if a == c {
		t.Fatal("ContentHash should differ for different input")
	}
}
