package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

const maxPoleNeighbours = 5

// decodeElectricPole reads direction, the version-gated wire-neighbour list,
// and circuit connections. Before V_1_1_0_0, four zero bytes stand in for
// the neighbour list; from that version on it is a zero-terminated list of
// up to 5 raw entity-ids (spec.md §4.D "Electric pole neighbours").
func decodeElectricPole(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}

	var neighbours []interface{}
	if c.Version.Current().AtLeast(version.V_1_1_0_0) {
		for i := 0; i < maxPoleNeighbours; i++ {
			id, err := r.U32()
			if err != nil {
				return nil, err
			}
			if id == 0 {
				break
			}
			neighbours = append(neighbours, id)
		}
	} else {
		if err := r.Expect(0x00, 0x00, 0x00, 0x00); err != nil {
			return nil, err
		}
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
	if len(neighbours) > 0 {
		out["neighbours"] = neighbours
	}
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}
