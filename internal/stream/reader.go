// Package stream implements the primitive byte-level reader shared by every
// decoder in this module: typed little-endian reads, the game's
// variable-length string and count encodings, and the literal/enum
// assertions that double as format-version checks throughout the wire
// format.
package stream

import (
	"encoding/binary"
	"math"
)

// Reader is a seekable little-endian byte reader over an in-memory buffer.
// The entire library file is small enough to load up front, so Reader trades
// a streaming io.Reader for direct slice indexing and cheap seeks — the
// blueprint "removed-mods" sidecar (spec.md §4.E) needs exactly that: seek
// forward, read a local index, seek back, parse, seek forward again.
type Reader struct {
	buf []byte
	pos int64
}

// New wraps buf for sequential and seekable reads starting at offset 0.
func New(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Tell returns the current byte offset.
func (r *Reader) Tell() int64 { return r.pos }

// Len returns the total number of bytes in the underlying buffer.
func (r *Reader) Len() int64 { return int64(len(r.buf)) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int64 { return int64(len(r.buf)) - r.pos }

// Seek moves the cursor to an absolute offset. It does not validate that the
// offset is in range; the next read will fail with a ParseError if it is not.
func (r *Reader) Seek(offset int64) {
	r.pos = offset
}

// Advance moves the cursor forward by n bytes without reading them, recording
// label only for debug traces on failure (it never affects parsing).
func (r *Reader) Advance(n int, label string) error {
	if r.Remaining() < int64(n) {
		return newParseError(r.pos, "cannot skip %d bytes (%s): only %d remain", n, label, r.Remaining())
	}
	r.pos += int64(n)
	return nil
}

func (r *Reader) need(n int) ([]byte, error) {
	if r.Remaining() < int64(n) {
		return nil, newParseError(r.pos, "need %d bytes, only %d remain", n, r.Remaining())
	}
	b := r.buf[r.pos : r.pos+int64(n)]
	r.pos += int64(n)
	return b, nil
}

// U8 reads an unsigned 8-bit integer.
func (r *Reader) U8() (uint8, error) {
	b, err := r.need(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// S8 reads a signed 8-bit integer.
func (r *Reader) S8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

// U16 reads an unsigned 16-bit little-endian integer.
func (r *Reader) U16() (uint16, error) {
	b, err := r.need(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// S16 reads a signed 16-bit little-endian integer.
func (r *Reader) S16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads an unsigned 32-bit little-endian integer.
func (r *Reader) U32() (uint32, error) {
	b, err := r.need(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// S32 reads a signed 32-bit little-endian integer.
func (r *Reader) S32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// F32 reads an IEEE-754 little-endian 32-bit float.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// F64 reads an IEEE-754 little-endian 64-bit float.
func (r *Reader) F64() (float64, error) {
	b, err := r.need(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// Bool reads a strict boolean: 0x00 or 0x01. Any other byte is a ParseError
// carrying the offset of the offending byte (spec.md §8 property 4).
func (r *Reader) Bool() (bool, error) {
	offset := r.pos
	v, err := r.U8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, newParseError(offset, "invalid boolean byte 0x%02x", v)
	}
}

// Count8 reads a fixed one-byte count.
func (r *Reader) Count8() (int, error) {
	v, err := r.U8()
	return int(v), err
}

// Count16 reads a fixed two-byte count.
func (r *Reader) Count16() (int, error) {
	v, err := r.U16()
	return int(v), err
}

// Count32 reads a fixed four-byte count.
func (r *Reader) Count32() (int, error) {
	v, err := r.U32()
	return int(v), err
}

// VarCount reads the string-length-style variable count: one byte, extended
// to a four-byte count when that byte is 0xFF (spec.md §4.A, §6 "Strings").
// The same encoding doubles as a blueprint content-size prefix.
func (r *Reader) VarCount() (int64, error) {
	b, err := r.U8()
	if err != nil {
		return 0, err
	}
	if b != 0xFF {
		return int64(b), nil
	}
	n, err := r.U32()
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

// String reads a length-prefixed UTF-8 string: a one-byte length, extended to
// a four-byte length when the prefix byte is 0xFF (spec.md §6 "Strings").
func (r *Reader) String() (string, error) {
	n, err := r.VarCount()
	if err != nil {
		return "", err
	}
	b, err := r.need(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MappedU8 reads one byte and maps it through table, indexed 0..len(table)-1.
// Used for fixed enumerations (comparators, arithmetic operators, ...) whose
// wire representation is a dense 0-based index.
func MappedU8[T any](r *Reader, table []T) (T, error) {
	var zero T
	offset := r.pos
	v, err := r.U8()
	if err != nil {
		return zero, err
	}
	if int(v) >= len(table) {
		return zero, newParseError(offset, "index %d out of range for %d-entry table", v, len(table))
	}
	return table[v], nil
}

// Expect reads len(literal) bytes and fails unless they match exactly.
func (r *Reader) Expect(literal ...byte) error {
	offset := r.pos
	b, err := r.need(len(literal))
	if err != nil {
		return err
	}
	for i, want := range literal {
		if b[i] != want {
			return newParseError(offset, "expected literal bytes %x, got %x", literal, b)
		}
	}
	return nil
}

// ExpectOneOf reads one byte and fails unless it is one of options.
func (r *Reader) ExpectOneOf(options ...byte) (byte, error) {
	offset := r.pos
	v, err := r.U8()
	if err != nil {
		return 0, err
	}
	for _, want := range options {
		if v == want {
			return v, nil
		}
	}
	return 0, newParseError(offset, "byte 0x%02x is not one of %v", v, options)
}

// Ignore consumes n bytes, discarding them. label identifies the field for
// debug traces (e.g. "library-state", "artillery sentinel run").
func (r *Reader) Ignore(n int, label string) error {
	return r.Advance(n, label)
}

// Bytes returns a copy of the next n bytes without interpreting them.
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.need(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}
