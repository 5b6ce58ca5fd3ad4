package entity

import (
	"strconv"

	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// readDirection reads the entity's facing direction byte.
func readDirection(r *stream.Reader) (int, error) {
	v, err := r.U8()
	return int(v), err
}

// readOrientation reads a continuous 0..1 orientation float (rail vehicles,
// turrets).
func readOrientation(r *stream.Reader) (float32, error) {
	return r.F32()
}

// readRecipe reads an optional recipe reference: a 16-bit recipe prototype
// ID, 0 meaning absent.
func readRecipe(r *stream.Reader, idx *prototype.Index) (string, bool, error) {
	offset := r.Tell()
	id, err := r.U16()
	if err != nil {
		return "", false, err
	}
	if id == 0 {
		return "", false, nil
	}
	entry, ok := idx.Lookup(prototype.Recipe, uint32(id))
	if !ok {
		return "", false, &stream.ParseError{Offset: offset, Message: "recipe id not found in prototype index"}
	}
	return entry.Name, true, nil
}

// readConnections reads n independent circuit-connection blocks (one per
// circuit id, numbered from 1), merging non-empty ones into a map keyed by
// circuit id string (spec.md §4.D "Combinators": "both circuits ... have
// independent connection blocks").
func readConnections(r *stream.Reader, n int) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	for i := 1; i <= n; i++ {
		block, err := fields.ReadCircuitConnections(r)
		if err != nil {
			return nil, err
		}
		if block != nil {
			out[itoa(i)] = block
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

// mergeInto copies every key of src into dst (dst must be non-nil).
func mergeInto(dst, src map[string]interface{}) {
	for k, v := range src {
		dst[k] = v
	}
}
