package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// roboportDefaultSignals are the hard-coded default logistic network signals
// (signal-X/Y/Z/T) roboport suppresses when the stored value matches (spec.md
// §4.D "Roboport 'empty' signal").
var roboportDefaultSignals = []map[string]interface{}{
	{"type": "virtual", "name": "signal-X"},
	{"type": "virtual", "name": "signal-Y"},
	{"type": "virtual", "name": "signal-Z"},
	{"type": "virtual", "name": "signal-T"},
}

var roboportSignalKeys = []string{
	"available_logistic_output_signal",
	"total_logistic_output_signal",
	"available_construction_output_signal",
	"total_construction_output_signal",
}

func decodeRoboport(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	cb := map[string]interface{}{}
	for i, key := range roboportSignalKeys {
		sig, err := fields.ReadSignal(r, c.Idx)
		if err != nil {
			return nil, err
		}
		if sig == nil {
			sig = map[string]interface{}{"type": "item"}
		}
		if signalsEqual(sig, roboportDefaultSignals[i]) {
			continue
		}
		cb[key] = sig
	}

	out := map[string]interface{}{}
	if len(cb) > 0 {
		out["control_behavior"] = cb
	}
	return out, nil
}

func signalsEqual(a, b map[string]interface{}) bool {
	return a["type"] == b["type"] && a["name"] == b["name"]
}
