package history

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// ContentHash returns the hex-encoded BLAKE2b-256 digest of buf, stored in
// each decode-history row; rows are keyed by file path (spec.md §3 "Content
// hash").
func ContentHash(buf []byte) string {
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
