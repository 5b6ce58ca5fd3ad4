// Package fields implements the shared field readers reused by nearly every
// entity variant decoder: signals, conditions, the property tree, icons,
// circuit connections, filters, items, and colors (spec.md §4.C).
//
// Every reader returns a plain Go value built from nil, bool, float64,
// string, []interface{}, and map[string]interface{} — the same sum type the
// property tree itself uses (spec.md §9 "Property tree as a sum type"). This
// lets the link resolver (internal/linkresolve) walk entity output uniformly
// regardless of which variant produced a given subtree, and lets suppressed
// default values simply be omitted map keys.
package fields

import (
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
)

// signalKindNames maps the wire signal-kind byte (0/1/2) to both its output
// type string and the prototype.Kind whose ID space it indexes.
var signalKindNames = []struct {
	name string
	kind prototype.Kind
}{
	{"item", prototype.Item},
	{"fluid", prototype.Fluid},
	{"virtual", prototype.VirtualSignal},
}

// ReadSignal reads a signal: u8 kind (0=item, 1=fluid, 2=virtual) then a
// 16-bit ID (spec.md §4.C). ID 0 means absent and is reported as a nil
// result with no error.
func ReadSignal(r *stream.Reader, idx *prototype.Index) (map[string]interface{}, error) {
	kindOffset := r.Tell()
	kindByte, err := r.U8()
	if err != nil {
		return nil, err
	}
	if int(kindByte) >= len(signalKindNames) {
		return nil, &stream.ParseError{Offset: kindOffset, Message: "invalid signal kind byte"}
	}
	id, err := r.U16()
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}
	kindInfo := signalKindNames[kindByte]
	entry, ok := idx.Lookup(kindInfo.kind, uint32(id))
	if !ok {
		return nil, &stream.ParseError{Offset: kindOffset, Message: "signal id not found in prototype index"}
	}
	return map[string]interface{}{"type": kindInfo.name, "name": entry.Name}, nil
}

// comparatorTable is the fixed 0-based operator index shared by conditions
// and wait-condition comparisons (spec.md §3 "Condition", §4.C).
var comparatorTable = []string{">", "<", "=", "≥", "≤", "≠"}

// ReadCondition reads a condition (comparator, first/second signal, 32-bit
// signed constant, use_constant flag) and suppresses the default condition —
// no signals, comparator "<", constant 0 — by returning a nil map with no
// error (spec.md §4.C).
func ReadCondition(r *stream.Reader, idx *prototype.Index) (map[string]interface{}, error) {
	comparator, err := stream.MappedU8(r, comparatorTable)
	if err != nil {
		return nil, err
	}
	first, err := ReadSignal(r, idx)
	if err != nil {
		return nil, err
	}
	second, err := ReadSignal(r, idx)
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

	if first == nil && second == nil && comparator == "<" && constant == 0 {
		return nil, nil
	}

	out := map[string]interface{}{"comparator": comparator}
	if first != nil {
		out["first_signal"] = first
	}
	if useConstant {
		out["constant"] = int32(constant)
	} else if second != nil {
		out["second_signal"] = second
	}
	return out, nil
}

// ReadConditionWithLogistics reads a condition followed by a boolean that,
// when true, surfaces as connect_to_logistic_network on the returned map
// (spec.md §4.C "Condition with logistic connection"). It always returns a
// non-nil map when connectToLogistics is true, even if the condition itself
// would otherwise be suppressed.
func ReadConditionWithLogistics(r *stream.Reader, idx *prototype.Index) (map[string]interface{}, error) {
	cond, err := ReadCondition(r, idx)
	if err != nil {
		return nil, err
	}
	connect, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if !connect {
		return cond, nil
	}
	if cond == nil {
		cond = map[string]interface{}{}
	}
	cond["connect_to_logistic_network"] = true
	return cond, nil
}

// Property tree type tags (spec.md §3 "Property tree").
const (
	ptNone = iota
	ptBool
	ptNumber
	ptString
	ptList
	ptDictionary
)

// ReadPropertyTree reads one property-tree node: a u8 type tag, an ignored
// boolean flag carried over from the source format, then a type-specific
// payload (spec.md §4.C, §9). It recurses for list and dictionary nodes.
func ReadPropertyTree(r *stream.Reader) (interface{}, error) {
	typeOffset := r.Tell()
	tag, err := r.U8()
	if err != nil {
		return nil, err
	}
	if _, err := r.Bool(); err != nil { // any_type flag: read and discarded
		return nil, err
	}

	switch tag {
	case ptNone:
		return nil, nil
	case ptBool:
		return r.Bool()
	case ptNumber:
		return r.F64()
	case ptString:
		isEmpty, err := r.Bool()
		if err != nil {
			return nil, err
		}
		if isEmpty {
			return "", nil
		}
		return r.String()
	case ptList:
		n, err := r.Count32()
		if err != nil {
			return nil, err
		}
		list := make([]interface{}, 0, n)
		for i := 0; i < n; i++ {
			if _, err := r.String(); err != nil { // list entries carry an (ignored) key
				return nil, err
			}
			v, err := ReadPropertyTree(r)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case ptDictionary:
		n, err := r.Count32()
		if err != nil {
			return nil, err
		}
		dict := make(map[string]interface{}, n)
		for i := 0; i < n; i++ {
			key, err := r.String()
			if err != nil {
				return nil, err
			}
			v, err := ReadPropertyTree(r)
			if err != nil {
				return nil, err
			}
			dict[key] = v
		}
		return dict, nil
	default:
		return nil, &stream.ParseError{Offset: typeOffset, Message: "unknown property tree type tag"}
	}
}

// ReadIcons reads the icon list: a leading u8-counted list of placeholder
// names for icons whose referenced prototype no longer exists, then the
// icon list proper — up to 4 {index, signal} pairs (spec.md §4.C, §8
// scenario 5). When a signal fails to resolve in idx, the next unused
// placeholder name is substituted so modded files with removed icons still
// decode.
func ReadIcons(r *stream.Reader, idx *prototype.Index) ([]interface{}, error) {
	placeholderCount, err := r.Count8()
	if err != nil {
		return nil, err
	}
	placeholders := make([]string, placeholderCount)
	for i := range placeholders {
		placeholders[i], err = r.String()
		if err != nil {
			return nil, err
		}
	}

	iconCount, err := r.Count8()
	if err != nil {
		return nil, err
	}

	var icons []interface{}
	nextPlaceholder := 0
	for i := 0; i < iconCount; i++ {
		index, err := r.U8()
		if err != nil {
			return nil, err
		}
		kindOffset := r.Tell()
		kindByte, err := r.U8()
		if err != nil {
			return nil, err
		}
		if int(kindByte) >= len(signalKindNames) {
			return nil, &stream.ParseError{Offset: kindOffset, Message: "invalid icon signal kind"}
		}
		id, err := r.U16()
		if err != nil {
			return nil, err
		}

		kindInfo := signalKindNames[kindByte]
		var name string
		if entry, ok := idx.Lookup(kindInfo.kind, uint32(id)); ok {
			name = entry.Name
		} else if nextPlaceholder < len(placeholders) {
			name = placeholders[nextPlaceholder]
			nextPlaceholder++
		} else {
			return nil, &stream.ParseError{Offset: kindOffset, Message: "icon signal unresolved and no placeholder available"}
		}

		icons = append(icons, map[string]interface{}{
			"index":  int(index),
			"signal": map[string]interface{}{"type": kindInfo.name, "name": name},
		})
	}
	return icons, nil
}

// ReadCircuitConnections reads the red/green peer-connection block shared by
// every circuit-network-capable entity variant: a 1-byte peer count per
// colour, each peer {raw_entity_id u32, circuit_id u8, 0xFF trailer byte},
// followed by 9 fixed zero bytes (spec.md §4.C). Peer entity IDs are raw and
// rewritten to entity numbers by the link resolver after the full entity
// list is read.
func ReadCircuitConnections(r *stream.Reader) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	for _, color := range []string{"red", "green"} {
		n, err := r.Count8()
		if err != nil {
			return nil, err
		}
		var peers []interface{}
		for i := 0; i < n; i++ {
			rawID, err := r.U32()
			if err != nil {
				return nil, err
			}
			circuitID, err := r.U8()
			if err != nil {
				return nil, err
			}
			if err := r.Expect(0xFF); err != nil {
				return nil, err
			}
			peers = append(peers, map[string]interface{}{
				"entity_id":  rawID,
				"circuit_id": int(circuitID),
			})
		}
		if len(peers) > 0 {
			out[color] = peers
		}
	}
	if err := r.Ignore(9, "circuit connection trailer"); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// ReadPositionalFilters reads n fixed filter slots, each a 16-bit item
// prototype ID, producing 1-based {index, name} entries and suppressing
// absent (ID 0) slots (spec.md §4.C, §8 "Filter indices are 1-based for
// blueprint-entity filters").
func ReadPositionalFilters(r *stream.Reader, idx *prototype.Index, n int) ([]interface{}, error) {
	var out []interface{}
	for i := 0; i < n; i++ {
		id, err := r.U16()
		if err != nil {
			return nil, err
		}
		if id == 0 {
			continue
		}
		entry, ok := idx.Lookup(prototype.Item, uint32(id))
		if !ok {
			return nil, &stream.ParseError{Offset: r.Tell() - 2, Message: "filter item id not found in prototype index"}
		}
		out = append(out, map[string]interface{}{"index": i + 1, "name": entry.Name})
	}
	return out, nil
}

// ReadZeroBasedFilters is ReadPositionalFilters's deconstruction/upgrade
// planner counterpart: the same shape, but 0-based indices (spec.md §8 "but
// 0-based for deconstruction/upgrade-planner filters — a deliberate
// asymmetry").
func ReadZeroBasedFilters(r *stream.Reader, idx *prototype.Index, n int) ([]interface{}, error) {
	var out []interface{}
	for i := 0; i < n; i++ {
		id, err := r.U16()
		if err != nil {
			return nil, err
		}
		if id == 0 {
			continue
		}
		entry, ok := idx.Lookup(prototype.Entity, uint32(id))
		if !ok {
			return nil, &stream.ParseError{Offset: r.Tell() - 2, Message: "filter entity id not found in prototype index"}
		}
		out = append(out, map[string]interface{}{"index": i, "name": entry.Name})
	}
	return out, nil
}

// ReadItemMap reads a u32-counted list of {item_id u16, count u32} pairs and
// groups them by resolved item name, summing counts for repeats (spec.md
// §4.D "Common trailer", §4.C "Items").
func ReadItemMap(r *stream.Reader, idx *prototype.Index) (map[string]interface{}, error) {
	n, err := r.Count32()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make(map[string]interface{}, n)
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
		entry, ok := idx.Lookup(prototype.Item, uint32(itemID))
		if !ok {
			return nil, &stream.ParseError{Offset: itemOffset, Message: "item id not found in prototype index"}
		}
		if existing, ok := out[entry.Name]; ok {
			out[entry.Name] = existing.(uint32) + count
		} else {
			out[entry.Name] = count
		}
	}
	return out, nil
}

// ReadColor reads an {r,g,b,a} float32 color and suppresses the all-zero
// value, which the game treats as "unset" (spec.md §4.C "colors").
func ReadColor(r *stream.Reader) (map[string]interface{}, error) {
	var vals [4]float32
	for i := range vals {
		v, err := r.F32()
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	if vals == [4]float32{} {
		return nil, nil
	}
	return map[string]interface{}{
		"r": vals[0], "g": vals[1], "b": vals[2], "a": vals[3],
	}, nil
}
