package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// decodeTransportBelt reads direction and the belt's read/enable-disable
// circuit condition; belts carry no bespoke state beyond that.
func decodeTransportBelt(r *stream.Reader, c *Context) (map[string]interface{}, error) {
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

// undergroundBeltIOTable maps the wire's 0/1 io byte to the belt's type.
var undergroundBeltIOTable = []string{"input", "output"}

// decodeUndergroundBelt reads direction and the input/output discriminator
// every underground belt half carries.
func decodeUndergroundBelt(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	kind, err := stream.MappedU8(r, undergroundBeltIOTable)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"direction": dir, "type": kind}, nil
}

// decodeLoader mirrors the underground belt's input/output discriminator
// plus the 5-slot item filter list loaders use to restrict what they move.
func decodeLoader(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	kind, err := stream.MappedU8(r, undergroundBeltIOTable)
	if err != nil {
		return nil, err
	}
	filters, err := fields.ReadPositionalFilters(r, c.Idx, 5)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{"direction": dir, "type": kind}
	if len(filters) > 0 {
		out["filters"] = filters
	}
	return out, nil
}

// decodeLinkedBelt reads direction, the input/output discriminator, and the
// paired link-id used to match a linked-belt to its counterpart.
func decodeLinkedBelt(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	kind, err := stream.MappedU8(r, undergroundBeltIOTable)
	if err != nil {
		return nil, err
	}
	linkID, err := r.U32()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"direction": dir, "type": kind, "belt_link": linkID}, nil
}
