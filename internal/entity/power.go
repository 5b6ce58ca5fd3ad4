package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// decodeBoiler reads direction and the circuit condition gating it.
func decodeBoiler(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
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
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}

// decodeGenerator reads direction only; a steam generator has no circuit
// network hookup.
func decodeGenerator(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"direction": dir}, nil
}

// decodeBurnerGenerator reads direction; fuel state travels in the common
// items trailer, not the variant body.
func decodeBurnerGenerator(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"direction": dir}, nil
}

// decodeSolarPanel carries no bespoke state.
func decodeSolarPanel(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

// decodeAccumulator reads the circuit-network signal used to broadcast
// charge level, suppressed when absent.
func decodeAccumulator(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	conns, err := readConnections(r, 1)
	if err != nil {
		return nil, err
	}
	sig, err := fields.ReadSignal(r, c.Idx)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if conns != nil {
		out["connections"] = conns
	}
	if sig != nil {
		out["control_behavior"] = map[string]interface{}{"output_signal": sig}
	}
	return out, nil
}

// decodeReactor reads direction and the circuit-enable condition.
func decodeReactor(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
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
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}

// decodeOffshorePump reads direction and the circuit-enable condition.
func decodeOffshorePump(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
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
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}

// decodeElectricEnergyInterface reads a buffer size override and an optional
// power production/consumption override pair.
func decodeElectricEnergyInterface(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	bufferSize, err := r.F64()
	if err != nil {
		return nil, err
	}
	production, err := r.F64()
	if err != nil {
		return nil, err
	}
	usage, err := r.F64()
	if err != nil {
		return nil, err
	}
	mode, err := stream.MappedU8(r, []string{"at-least", "at-most", "exactly"})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"buffer_size":      bufferSize,
		"power_production": production,
		"power_usage":      usage,
		"mode":             mode,
	}, nil
}
