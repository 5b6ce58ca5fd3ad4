package object

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// waitConditionTypeTable and waitConditionCompareTable are the fixed 0-based
// wire enumerations for a wait condition's type and and/or combinator
// (spec.md §3 "Schedule").
var waitConditionTypeTable = []string{
	"time", "full", "empty", "item_count", "circuit", "inactivity",
	"robots_inactive", "fluid_count", "passenger_present", "passenger_not_present",
}
var waitConditionCompareTable = []string{"and", "or"}

// waitConditionsWithTicks carry an explicit tick duration; the rest either
// carry a circuit-style condition or nothing at all.
var waitConditionsWithTicks = map[string]bool{"time": true, "inactivity": true}
var waitConditionsWithCondition = map[string]bool{"item_count": true, "fluid_count": true, "circuit": true}

// ReadWaitConditions reads the count32-prefixed wait-condition list attached
// to one station stop.
func ReadWaitConditions(r *stream.Reader, idx *prototype.Index) ([]interface{}, error) {
	n, err := r.Count32()
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		wcType, err := stream.MappedU8(r, waitConditionTypeTable)
		if err != nil {
			return nil, err
		}
		compareType, err := stream.MappedU8(r, waitConditionCompareTable)
		if err != nil {
			return nil, err
		}
		wc := map[string]interface{}{"type": wcType, "compare_type": compareType}

		if waitConditionsWithTicks[wcType] {
			ticks, err := r.U32()
			if err != nil {
				return nil, err
			}
			wc["ticks"] = ticks
		}
		if waitConditionsWithCondition[wcType] {
			cond, err := fields.ReadCondition(r, idx)
			if err != nil {
				return nil, err
			}
			if cond != nil {
				wc["condition"] = cond
			}
		}
		out = append(out, wc)
	}
	return out, nil
}

// ReadStations reads the count32-prefixed station list of one schedule: name,
// wait conditions, and the temporary-stop flag. Temporary stops carry a
// rail-direction byte from V_1_1_43_0 onward; before that gate the same slot
// holds four meaningless bytes (spec.md §4.D "V_1_1_43_0", §9 "Open
// questions").
func ReadStations(r *stream.Reader, idx *prototype.Index, vctx *version.Context) ([]interface{}, error) {
	n, err := r.Count32()
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		name, err := r.String()
		if err != nil {
			return nil, err
		}
		waitConditions, err := ReadWaitConditions(r, idx)
		if err != nil {
			return nil, err
		}
		temporary, err := r.Bool()
		if err != nil {
			return nil, err
		}

		station := map[string]interface{}{"station": name}
		if len(waitConditions) > 0 {
			station["wait_conditions"] = waitConditions
		}
		if temporary {
			station["temporary"] = true
			if vctx.Current().AtLeast(version.V_1_1_43_0) {
				railDirection, err := r.U8()
				if err != nil {
					return nil, err
				}
				station["rail_direction"] = railDirection
			} else {
				if err := r.Ignore(4, "schedule rail-direction (pre-1.1.43, meaningless)"); err != nil {
					return nil, err
				}
			}
		}
		out = append(out, station)
	}
	return out, nil
}

// ReadSchedules reads the blueprint-level count32-prefixed schedule list:
// each schedule pairs a raw-id locomotive list with its station list
// (spec.md §3 "Schedule"). Locomotive raw ids are rewritten to entity
// numbers by the link resolver after the full entity list is read.
func ReadSchedules(r *stream.Reader, idx *prototype.Index, vctx *version.Context) ([]interface{}, error) {
	n, err := r.Count32()
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		locoCount, err := r.Count32()
		if err != nil {
			return nil, err
		}
		locomotives := make([]interface{}, locoCount)
		for j := range locomotives {
			id, err := r.U32()
			if err != nil {
				return nil, err
			}
			locomotives[j] = id
		}
		stations, err := ReadStations(r, idx, vctx)
		if err != nil {
			return nil, err
		}
		sched := map[string]interface{}{"locomotives": locomotives}
		if len(stations) > 0 {
			sched["schedule"] = stations
		}
		out = append(out, sched)
	}
	return out, nil
}
