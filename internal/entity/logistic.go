package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// logisticModesWithBuffersPre119 are the logistic_mode values that surfaced
// request_from_buffers before STABLE_V_1_1 (spec.md §4.D "Logistic
// settings", §9 "Open questions").
var logisticModesWithBuffersPre119 = map[byte]bool{2: true, 3: true, 5: true}

// decodeLogisticContainer reads a logistic-container's direction and request
// filters plus its logistic_mode-gated settings (spec.md §4.D "Logistic
// settings").
func decodeLogisticContainer(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}

	mode, err := r.U8()
	if err != nil {
		return nil, err
	}
	if err := r.Expect(0x03); err != nil {
		return nil, err
	}
	filters, err := fields.ReadPositionalFilters(r, c.Idx, 12)
	if err != nil {
		return nil, err
	}

	cur := c.Version.Current()
	wantsBuffersField := cur.AtLeast(version.STABLE_V_1_1) || logisticModesWithBuffersPre119[mode]
	var requestFromBuffers bool
	var hasBuffersField bool
	if wantsBuffersField {
		hasBuffersField = true
		requestFromBuffers, err = r.Bool()
		if err != nil {
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
	if len(filters) > 0 {
		out["request_filters"] = filters
	}
	if hasBuffersField && requestFromBuffers {
		out["request_from_buffers"] = true
	}
	if conns != nil {
		out["connections"] = conns
	}
	if cond != nil {
		out["control_behavior"] = map[string]interface{}{"circuit_condition": cond}
	}
	return out, nil
}

func decodeInfinityContainer(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	n, err := r.Count32()
	if err != nil {
		return nil, err
	}
	var filters []interface{}
	for i := 0; i < n; i++ {
		itemOffset := r.Tell()
		itemID, err := r.U16()
		if err != nil {
			return nil, err
		}
		count, err := r.U32()
		if err != nil {
			return nil, err
		}
		mode, err := stream.MappedU8(r, []string{"at-least", "at-most", "exactly"})
		if err != nil {
			return nil, err
		}
		if itemID == 0 {
			continue
		}
		entry, ok := c.Idx.Lookup(prototype.Item, uint32(itemID))
		if !ok {
			return nil, &stream.ParseError{Offset: itemOffset, Message: "infinity filter item id not found"}
		}
		filters = append(filters, map[string]interface{}{
			"index": i + 1, "name": entry.Name, "count": count, "mode": mode,
		})
	}
	removeUnfiltered, err := r.Bool()
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{"direction": dir}
	if len(filters) > 0 || removeUnfiltered {
		settings := map[string]interface{}{"remove_unfiltered_items": removeUnfiltered}
		if len(filters) > 0 {
			settings["filters"] = filters
		}
		out["infinity_settings"] = settings
	}
	return out, nil
}

func decodeLinkedContainer(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	linkID, err := r.U32()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"link_id": linkID}, nil
}
