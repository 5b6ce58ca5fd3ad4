package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// decodeInserter reads an inserter's direction, filter list, and flag byte.
// Flag bits: 0x01 override_stack_size, 0x02 whitelist (when clear, emit
// filter_mode "blacklist"), 0x04 required set; any other bit set is a parse
// error (spec.md §4.D "Inserter flags").
func decodeInserter(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}

	filters, err := fields.ReadPositionalFilters(r, c.Idx, 5)
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

	flagOffset := r.Tell()
	flags, err := r.U8()
	if err != nil {
		return nil, err
	}
	if flags&0x04 == 0 {
		return nil, &stream.ParseError{Offset: flagOffset, Message: "inserter flag byte missing required bit 0x04"}
	}
	if flags&^byte(0x07) != 0 {
		return nil, &stream.ParseError{Offset: flagOffset, Message: "inserter flag byte has unexpected bits set"}
	}

	out := map[string]interface{}{"direction": dir}
	if len(filters) > 0 {
		out["filters"] = filters
	}
	if conns != nil {
		out["connections"] = conns
	}
	if flags&0x01 != 0 {
		out["override_stack_size"] = true
	}
	if flags&0x02 == 0 {
		out["filter_mode"] = "blacklist"
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}
