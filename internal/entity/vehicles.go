package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// decodeLocomotive reads orientation and an optional custom paint color.
func decodeLocomotive(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	orientation, err := readOrientation(r)
	if err != nil {
		return nil, err
	}
	color, err := fields.ReadColor(r)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{"orientation": orientation}
	if color != nil {
		out["color"] = color
	}
	return out, nil
}

// decodeCargoWagon reads orientation, an optional bar limit, and the
// 40-slot cargo filter list.
func decodeCargoWagon(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	orientation, err := readOrientation(r)
	if err != nil {
		return nil, err
	}
	bar, err := readBar(r)
	if err != nil {
		return nil, err
	}
	filters, err := fields.ReadPositionalFilters(r, c.Idx, 40)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{"orientation": orientation}
	if bar != nil {
		out["bar"] = *bar
	}
	if len(filters) > 0 {
		out["inventory"] = map[string]interface{}{"filters": filters}
	}
	return out, nil
}

// decodeFluidWagon reads orientation only; its fluid contents never
// serialize into a blueprint.
func decodeFluidWagon(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	orientation, err := readOrientation(r)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"orientation": orientation}, nil
}

// decodeArtilleryWagon mirrors decodeArtilleryTurret's orientation plus the
// pair of undocumented sentinel literals the source enforces as a
// version-integrity check (spec.md §9 "Open questions").
func decodeArtilleryWagon(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	orientation, err := readOrientation(r)
	if err != nil {
		return nil, err
	}
	if err := r.Expect(0xFF, 0x7F); err != nil { // artillerySentinel16, little-endian
		return nil, err
	}
	if err := r.Expect(0xFF, 0xFF, 0xFF, 0x7F); err != nil { // artillerySentinel32, little-endian
		return nil, err
	}
	return map[string]interface{}{"orientation": orientation}, nil
}
