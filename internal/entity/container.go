package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// readBar reads a container's inventory bar limit: a 16-bit slot count, with
// 0xFFFF meaning "unset" (the full inventory is usable).
func readBar(r *stream.Reader) (*int, error) {
	v, err := r.U16()
	if err != nil {
		return nil, err
	}
	if v == 0xFFFF {
		return nil, nil
	}
	n := int(v)
	return &n, nil
}

// decodeContainer handles the plain storage container (wood/iron/steel
// chest): an optional bar limit plus the usual circuit hookup.
func decodeContainer(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	bar, err := readBar(r)
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
	if bar != nil {
		out["bar"] = *bar
	}
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}

// decodeStorageTank reads direction plus the circuit connections; fluid
// contents are never serialized in a blueprint (spec.md §4.D envelope).
func decodeStorageTank(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	conns, err := readConnections(r, 1)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{"direction": dir}
	if conns != nil {
		out["connections"] = conns
	}
	return out, nil
}

// decodeFlyingText is the placeholder variant body for entities whose real
// prototype class was removed with a mod; the class classifies as ENTITY
// (spec.md §4.B "flying-text") purely so the entity can carry a name, and
// its body is empty.
func decodeFlyingText(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}
