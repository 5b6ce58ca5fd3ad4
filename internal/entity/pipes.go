package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// decodePipe carries no bespoke state: the common envelope (position,
// items, tags) is everything a plain pipe segment needs.
func decodePipe(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

// decodePipeToGround reads the direction a pipe-to-ground end faces.
func decodePipeToGround(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"direction": dir}, nil
}

// decodePump reads direction plus the circuit-enable condition a pump can
// be gated on.
func decodePump(r *stream.Reader, c *Context) (map[string]interface{}, error) {
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

// infinityPipeModeTable extends the infinity-container filter modes with
// "add" and "remove" (spec.md §4.D "Logistic settings" sibling for fluids).
var infinityPipeModeTable = []string{"at-least", "at-most", "exactly", "add", "remove"}

// decodeInfinityPipe reads an optional infinite fluid source/sink setting:
// fluid name (string, empty meaning unset), percentage (float64), mode, and
// a temperature.
func decodeInfinityPipe(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	name, err := r.String()
	if err != nil {
		return nil, err
	}
	percentage, err := r.F64()
	if err != nil {
		return nil, err
	}
	mode, err := stream.MappedU8(r, infinityPipeModeTable)
	if err != nil {
		return nil, err
	}
	temperature, err := r.F64()
	if err != nil {
		return nil, err
	}

	if name == "" {
		return map[string]interface{}{}, nil
	}
	return map[string]interface{}{
		"infinity_settings": map[string]interface{}{
			"fluid": map[string]interface{}{
				"name":        name,
				"percentage":  percentage,
				"mode":        mode,
				"temperature": temperature,
			},
		},
	}, nil
}

// decodeHeatPipe carries no bespoke state beyond the common envelope.
func decodeHeatPipe(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

// decodeHeatInterface reads a target temperature and heat-buffer mode.
func decodeHeatInterface(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	temperature, err := r.F64()
	if err != nil {
		return nil, err
	}
	mode, err := stream.MappedU8(r, []string{"at-least", "at-most", "exactly", "add", "remove"})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"temperature": temperature,
		"mode":        mode,
	}, nil
}
