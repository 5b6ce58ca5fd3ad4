package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// decodePowerSwitch reads its two copper-side connection blocks, an optional
// circuit condition, and the version-gated explicit on/off state — before
// V_1_1_4_0, a required zero byte stands in for it (spec.md §4.D
// "V_1_1_4_0").
func decodePowerSwitch(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	conns, err := readConnections(r, 2)
	if err != nil {
		return nil, err
	}
	cond, err := fields.ReadConditionWithLogistics(r, c.Idx)
	if err != nil {
		return nil, err
	}

	var switchState bool
	if c.Version.Current().AtLeast(version.V_1_1_4_0) {
		switchState, err = r.Bool()
		if err != nil {
			return nil, err
		}
	} else {
		if err := r.Expect(0x00); err != nil {
			return nil, err
		}
	}

	out := map[string]interface{}{"switch_state": switchState}
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}
