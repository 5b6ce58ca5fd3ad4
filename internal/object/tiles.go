package object

import (
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// ReadTiles reads a blueprint's tile list: a count32-prefixed list of
// {tile-prototype-id (1 byte, spec.md §6 "Entity frame" / §4.B tile ID
// space), x, y} entries in plain tile coordinates (unlike entity positions,
// tiles are never fractional).
func ReadTiles(r *stream.Reader, idx *prototype.Index) ([]interface{}, error) {
	n, err := r.Count32()
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		idOffset := r.Tell()
		id, err := r.U8()
		if err != nil {
			return nil, err
		}
		x, err := r.S32()
		if err != nil {
			return nil, err
		}
		y, err := r.S32()
		if err != nil {
			return nil, err
		}
		entry, ok := idx.Lookup(prototype.Tile, uint32(id))
		if !ok {
			return nil, &stream.ParseError{Offset: idOffset, Message: "tile prototype id not found in prototype index"}
		}
		out = append(out, map[string]interface{}{
			"name":     entry.Name,
			"position": map[string]interface{}{"x": x, "y": y},
		})
	}
	return out, nil
}
