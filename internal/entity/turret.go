package entity

import (
	"math"

	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// fixupTurretDirection resolves the redundant direction/orientation pair
// every turret variant stores. direction==8 is the vanilla "north-pinned"
// sentinel: the real facing lives in orientation and is recovered as
// floor(8*orientation), with orientation then dropped. Otherwise the stored
// direction is kept only if non-zero (spec.md §4.D "Turrets", §8 boundary
// examples).
func fixupTurretDirection(direction int, orientation float32) (dir int, ok bool) {
	if direction == 8 {
		d := int(math.Floor(8 * float64(orientation)))
		if d == 0 {
			return 0, false
		}
		return d, true
	}
	if direction != 0 {
		return direction, true
	}
	return 0, false
}

// decodeCircuitTurret handles ammo-turret, electric-turret, and fluid-turret:
// direction, orientation (redundant fixup), and an optional circuit-enabled
// condition.
func decodeCircuitTurret(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	orientation, err := readOrientation(r)
	if err != nil {
		return nil, err
	}
	conns, err := readConnections(r, 1)
	if err != nil {
		return nil, err
	}
	cond, err := fields.ReadConditionWithLogistics(r, c.Idx)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{}
	if d, ok := fixupTurretDirection(dir, orientation); ok {
		out["direction"] = d
	}
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}

// artillerySentinel32 and artillerySentinel16 are undocumented literal
// values artillery-wagon/artillery-turret bodies carry. They function as
// version-integrity checks and are enforced, not interpreted (spec.md §9
// "Open questions").
const (
	artillerySentinel16 = 0x7FFF
	artillerySentinel32 = 0x7FFFFFFF
)

func decodeArtilleryTurret(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
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

	out := map[string]interface{}{}
	if d, ok := fixupTurretDirection(dir, orientation); ok {
		out["direction"] = d
	}
	return out, nil
}

func decodeRadar(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"direction": dir}, nil
}

func decodeLandMine(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}
