package entity

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// arithmeticOperatorTable is the fixed 0-based operator index for arithmetic
// combinators (spec.md §4.D "Combinators").
var arithmeticOperatorTable = []string{"*", "/", "+", "-", "%", "^", "<<", ">>", "AND", "OR", "XOR"}

// deciderComparatorTable mirrors the shared condition comparator index
// (spec.md §4.D "comparator index ranges as for the shared condition
// reader").
var deciderComparatorTable = []string{">", "<", "=", "≥", "≤", "≠"}

func decodeArithmeticCombinator(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	conns, err := readConnections(r, 2)
	if err != nil {
		return nil, err
	}

	first, err := fields.ReadSignal(r, c.Idx)
	if err != nil {
		return nil, err
	}
	second, err := fields.ReadSignal(r, c.Idx)
	if err != nil {
		return nil, err
	}
	constant, err := r.S32()
	if err != nil {
		return nil, err
	}
	useConstant, err := r.Bool()
	if err != nil {
		return nil, err
	}
	operator, err := stream.MappedU8(r, arithmeticOperatorTable)
	if err != nil {
		return nil, err
	}
	output, err := fields.ReadSignal(r, c.Idx)
	if err != nil {
		return nil, err
	}

	cb := map[string]interface{}{"operation": operator}
	if first != nil {
		cb["first_signal"] = first
	}
	if useConstant {
		cb["second_constant"] = constant
	} else if second != nil {
		cb["second_signal"] = second
	}
	if output != nil {
		cb["output_signal"] = output
	}

	out := map[string]interface{}{
		"direction":       dir,
		"control_behavior": map[string]interface{}{"arithmetic_conditions": cb},
	}
	if conns != nil {
		out["connections"] = conns
	}
	return out, nil
}

func decodeDeciderCombinator(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	conns, err := readConnections(r, 2)
	if err != nil {
		return nil, err
	}

	first, err := fields.ReadSignal(r, c.Idx)
	if err != nil {
		return nil, err
	}
	second, err := fields.ReadSignal(r, c.Idx)
	if err != nil {
		return nil, err
	}
	constant, err := r.S32()
	if err != nil {
		return nil, err
	}
	useConstant, err := r.Bool()
	if err != nil {
		return nil, err
	}
	comparator, err := stream.MappedU8(r, deciderComparatorTable)
	if err != nil {
		return nil, err
	}
	output, err := fields.ReadSignal(r, c.Idx)
	if err != nil {
		return nil, err
	}
	copyCount, err := r.Bool()
	if err != nil {
		return nil, err
	}

	cb := map[string]interface{}{
		"comparator":             comparator,
		"copy_count_from_input": copyCount,
	}
	if first != nil {
		cb["first_signal"] = first
	}
	if useConstant {
		cb["constant"] = constant
	} else if second != nil {
		cb["second_signal"] = second
	}
	if output != nil {
		cb["output_signal"] = output
	}

	out := map[string]interface{}{
		"direction":       dir,
		"control_behavior": map[string]interface{}{"decider_conditions": cb},
	}
	if conns != nil {
		out["connections"] = conns
	}
	return out, nil
}

// decodeConstantCombinator reads a 32-bit count of (signal, signed-32 count)
// slots — absent signals are dropped from output — followed by an is_on
// boolean that surfaces only when false (spec.md §4.D "Constant
// combinator").
func decodeConstantCombinator(r *stream.Reader, c *Context) (map[string]interface{}, error) {
	dir, err := readDirection(r)
	if err != nil {
		return nil, err
	}
	conns, err := readConnections(r, 1)
	if err != nil {
		return nil, err
	}

	n, err := r.Count32()
	if err != nil {
		return nil, err
	}
	var filters []interface{}
	for i := 0; i < n; i++ {
		sig, err := fields.ReadSignal(r, c.Idx)
		if err != nil {
			return nil, err
		}
		count, err := r.S32()
		if err != nil {
			return nil, err
		}
		if sig == nil {
			continue
		}
		filters = append(filters, map[string]interface{}{
			"index":  i + 1,
			"signal": sig,
			"count":  count,
		})
	}

	isOn, err := r.Bool()
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{"direction": dir}
	if conns != nil {
		out["connections"] = conns
	}
	cb := map[string]interface{}{}
	if len(filters) > 0 {
		cb["filters"] = filters
	}
	if !isOn {
		cb["is_on"] = false
	}
	if len(cb) > 0 {
		out["control_behavior"] = cb
	}
	return out, nil
}
