package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

var railSignalDefaults = map[string]map[string]interface{}{
	"red_output_signal":    {"type": "virtual", "name": "signal-red"},
	"yellow_output_signal": {"type": "virtual", "name": "signal-yellow"},
	"green_output_signal":  {"type": "virtual", "name": "signal-green"},
}

// readRailSignalColors reads the red/yellow/green output signals shared by
// rail-signal and rail-chain-signal, suppressing each that equals its
// hard-coded default (spec.md §4.D "Rail signal / chain signal colour
// signals").
func readRailSignalColors(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	for _, key := range []string{"red_output_signal", "yellow_output_signal", "green_output_signal"} {
		sig, err := fields.ReadSignal(r, c.Idx)
		if err != nil {
			return nil, err
		}
		if sig == nil {
			continue
		}
		if signalsEqual(sig, railSignalDefaults[key]) {
			continue
		}
		out[key] = sig
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func decodeStraightRail(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"direction": dir}, nil
}

func decodeRailSignal(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	colors, err := readRailSignalColors(r, c)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{"direction": dir}
	if colors != nil {
		out["control_behavior"] = colors
	}
	return out, nil
}

// decodeRailChainSignal additionally carries an extra flag byte from
// STABLE_V_1_1 onward (spec.md §4.D "STABLE_V_1_1").
func decodeRailChainSignal(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	colors, err := readRailSignalColors(r, c)
	if err != nil {
		return nil, err
	}
	if c.Version.Current().AtLeast(version.STABLE_V_1_1) {
		if err := r.Ignore(1, "rail-chain-signal extra flag"); err != nil {
			return nil, err
		}
	}
	out := map[string]interface{}{"direction": dir}
	if colors != nil {
		out["control_behavior"] = colors
	}
	return out, nil
}

func decodeTrainVehicle(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	orientation, err := readOrientation(r)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"orientation": orientation}, nil
}
