package exportstring

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, repeated for compressibility, the quick brown fox jumps over the lazy dog")

	encoded, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(encoded) == 0 || encoded[0] < '0' || encoded[0] > '9' {
		t.Fatalf("expected leading ASCII digit, got %q", encoded)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Fatalf("round trip mismatch: got %q, want %q", decoded, original)
	}
}

func TestDecodeRejectsMissingPrefix(t *testing.T) {
	if _, err := Decode(""); err == nil {
		t.Fatal("expected error for empty string")
	}
	if _, err := Decode("not-a-digit-prefix"); err == nil {
		t.Fatal("expected error for missing version digit")
	}
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	if _, err := Decode("0***"); err == nil {
		t.Fatal("expected base64 decode error")
	}
}
