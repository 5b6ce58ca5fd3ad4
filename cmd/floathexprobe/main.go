// Command floathexprobe reads lines from stdin, each a float32/float64 hex
// literal (little-endian bytes) or a decimal fixed-point integer, and prints
// the decoded value, used to spot-check the fixed-point (x/256) position
// encoding used throughout entity positions (SPEC_FULL.md §1 "Sibling
// utilities").
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ernie/blueprint-decoder/internal/stream"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := probeLine(line); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// probeLine accepts either a hex literal (8 bytes for f64, 4 for f32) or a
// bare decimal, which is instead interpreted as a fixed-point (x/256) entity
// coordinate the way position.go decodes it. A line made only of hex digits
// with an even length (after an optional 0x prefix) is always taken as hex,
// so a decimal such as 1024 is read as two hex bytes and rejected.
func probeLine(line string) error {
	if clean := strings.TrimPrefix(line, "0x"); isHex(clean) {
		raw, err := hex.DecodeString(clean)
		if err != nil {
			return err
		}
		r := stream.New(raw)
		switch len(raw) {
		case 4:
			v, err := r.F32()
			if err != nil {
				return err
			}
			fmt.Printf("f32 %s -> %v\n", clean, v)
		case 8:
			v, err := r.F64()
			if err != nil {
				return err
			}
			fmt.Printf("f64 %s -> %v\n", clean, v)
		default:
			return fmt.Errorf("expected 4 or 8 bytes, got %d", len(raw))
		}
		return nil
	}

	n, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return fmt.Errorf("not hex and not a fixed-point integer: %w", err)
	}
	fmt.Printf("fixed(%d) -> %v\n", n, float64(n)/256)
	return nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return len(s)%2 == 0
}
