package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// decodeTrainStop reads direction, station name, an optional paint color,
// the circuit hookup, and — from STABLE_V_1_1 — the read-trains-count /
// set-trains-limit / manual-trains-limit block (spec.md §4.D "STABLE_V_1_1").
func decodeTrainStop(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	station, err := r.String()
	if err != nil {
		return nil, err
	}
	color, err := fields.ReadColor(r)
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
	readFromTrain, err := r.Bool()
	if err != nil {
		return nil, err
	}
	readStoppedTrain, err := r.Bool()
	if err != nil {
		return nil, err
	}
	trainStoppedSignal, err := fields.ReadSignal(r, c.Idx)
	if err != nil {
		return nil, err
	}

	var readTrainsCount, setTrainsLimit bool
	var manualTrainsLimit uint32
	if c.Version.Current().AtLeast(version.STABLE_V_1_1) {
		readTrainsCount, err = r.Bool()
		if err != nil {
			return nil, err
		}
		setTrainsLimit, err = r.Bool()
		if err != nil {
			return nil, err
		}
		if setTrainsLimit {
			manualTrainsLimit, err = r.U32()
			if err != nil {
				return nil, err
			}
		}
	}

	out := map[string]interface{}{"direction": dir, "station": station}
	if color != nil {
		out["color"] = color
	}
	if conns != nil {
		out["connections"] = conns
	}

	cb := map[string]interface{}{}
	if cond != nil {
		cb["circuit_condition"] = cond
	}
	if readFromTrain {
		cb["read_from_train"] = true
	}
	if readStoppedTrain {
		cb["read_stopped_train"] = true
	}
	if trainStoppedSignal != nil {
		cb["train_stopped_signal"] = trainStoppedSignal
	}
	if readTrainsCount {
		cb["read_trains_count"] = true
	}
	if setTrainsLimit {
		cb["set_trains_limit"] = true
		cb["trains_limit"] = manualTrainsLimit
	}
	if len(cb) > 0 {
		out["control_behavior"] = cb
	}
	return out, nil
}
