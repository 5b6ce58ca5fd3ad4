package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// decodeFurnace reads direction only; a furnace's recipe is implicit in its
// input items and never stored on the wire.
func decodeFurnace(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"direction": dir}, nil
}

// decodeAssemblingMachine reads direction, an optional recipe (spec.md §4.D
// "readRecipe"), and the circuit condition gating it.
func decodeAssemblingMachine(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	recipe, hasRecipe, err := readRecipe(r, c.Idx)
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

	out := map[string]interface{}{"direction": dir}
	if hasRecipe {
		out["recipe"] = recipe
	}
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}

// decodeLab carries no bespoke state beyond the common envelope.
func decodeLab(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

// decodeBeacon carries no bespoke state; modules it holds travel in the
// common items trailer.
func decodeBeacon(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

// decodeMiningDrill reads direction, an optional recipe (pumpjacks choose a
// resource "recipe"), and the circuit condition gating it.
func decodeMiningDrill(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	recipe, hasRecipe, err := readRecipe(r, c.Idx)
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

	out := map[string]interface{}{"direction": dir}
	if hasRecipe {
		out["recipe"] = recipe
	}
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}

// decodeRocketSilo reads direction, a recipe, and the auto-launch flag.
func decodeRocketSilo(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	recipe, hasRecipe, err := readRecipe(r, c.Idx)
	if err != nil {
		return nil, err
	}
	autoLaunch, err := r.Bool()
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

	out := map[string]interface{}{"direction": dir}
	if hasRecipe {
		out["recipe"] = recipe
	}
	if autoLaunch {
		out["auto_launch"] = true
	}
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}
