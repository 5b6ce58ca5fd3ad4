package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// splitterPriority describes the (input, output) priority sides a single
// splitter priority byte encodes. nil means "not enabled" for that side.
type splitterPriority struct {
	input, output *string
}

func side(s string) *string { return &s }

// splitterPriorityTable is the fixed 9-entry mapping of valid priority code
// points (spec.md §4.D "Splitter priorities"). Any other byte is a parse
// error.
var splitterPriorityTable = map[byte]splitterPriority{
	0x00: {nil, nil},
	0x10: {side("left"), nil},
	0x13: {side("right"), nil},
	0x20: {nil, side("left")},
	0x2C: {nil, side("right")},
	0x30: {side("left"), side("right")},
	0x33: {side("right"), side("left")},
	0x3C: {side("right"), side("right")},
	0x3F: {side("left"), side("left")},
}

func decodeSplitter(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}

	codeOffset := r.Tell()
	code, err := r.U8()
	if err != nil {
		return nil, err
	}
	priority, ok := splitterPriorityTable[code]
	if !ok {
		return nil, &stream.ParseError{Offset: codeOffset, Message: "invalid splitter priority code"}
	}

	filters, err := fields.ReadPositionalFilters(r, c.Idx, 1)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{"direction": dir}
	if priority.input != nil {
		out["input_priority"] = *priority.input
	}
	if priority.output != nil {
		out["output_priority"] = *priority.output
	}
	if len(filters) > 0 {
		out["filter"] = filters[0].(map[string]interface{})["name"]
	}
	return out, nil
}
