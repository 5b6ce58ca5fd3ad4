package object

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// endpointKindTable discriminates a mapper endpoint as entity-vs-item
// (spec.md §4.E "Upgrade-planner ... each endpoint is tagged entity-vs-item
// via a u8 discriminator").
var endpointKindTable = []prototype.Kind{prototype.Entity, prototype.Item}

// readMapperEndpoint reads one {discriminator, id} endpoint, falling back to
// a placeholder name (by direction: "from" or "to") when the id no longer
// resolves — mirroring the removed-mod replacement mechanism used elsewhere
// (spec.md §4.E "a list of unknown mapper replacements (with direction
// flag)").
func readMapperEndpoint(r *stream.Reader, idx *prototype.Index, placeholders map[string][]string, direction string) (map[string]interface{}, error) {
	discOffset := r.Tell()
	disc, err := r.U8()
	if err != nil {
		return nil, err
	}
	if int(disc) >= len(endpointKindTable) {
		return nil, &stream.ParseError{Offset: discOffset, Message: "invalid mapper endpoint discriminator"}
	}
	kind := endpointKindTable[disc]

	idOffset := r.Tell()
	id, err := r.U16()
	if err != nil {
		return nil, err
	}

	var name string
	if entry, ok := idx.Lookup(kind, uint32(id)); ok {
		name = entry.Name
	} else {
		list := placeholders[direction]
		if len(list) == 0 {
			return nil, &stream.ParseError{Offset: idOffset, Message: "mapper endpoint unresolved and no placeholder available"}
		}
		name = list[0]
		placeholders[direction] = list[1:]
	}

	typeName := "item"
	if kind == prototype.Entity {
		typeName = "entity"
	}
	return map[string]interface{}{"name": name, "type": typeName}, nil
}

// DecodeUpgradePlanner reads label, description, icons, the leading
// placeholder-name list (keyed by from/to direction), and the from/to
// mapper pairs (spec.md §4.E "Upgrade-planner").
func DecodeUpgradePlanner(r *stream.Reader, idx *prototype.Index, vctx *version.Context) (map[string]interface{}, error) {
	label, err := r.String()
	if err != nil {
		return nil, err
	}
	description, err := r.String()
	if err != nil {
		return nil, err
	}
	icons, err := fields.ReadIcons(r, idx)
	if err != nil {
		return nil, err
	}

	placeholderCount, err := r.Count8()
	if err != nil {
		return nil, err
	}
	placeholders := map[string][]string{}
	for i := 0; i < placeholderCount; i++ {
		name, err := r.String()
		if err != nil {
			return nil, err
		}
		isTo, err := r.Bool()
		if err != nil {
			return nil, err
		}
		direction := "from"
		if isTo {
			direction = "to"
		}
		placeholders[direction] = append(placeholders[direction], name)
	}

	n, err := r.Count32()
	if err != nil {
		return nil, err
	}
	mappers := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		from, err := readMapperEndpoint(r, idx, placeholders, "from")
		if err != nil {
			return nil, err
		}
		to, err := readMapperEndpoint(r, idx, placeholders, "to")
		if err != nil {
			return nil, err
		}
		index, err := r.U16()
		if err != nil {
			return nil, err
		}
		mappers = append(mappers, map[string]interface{}{
			"index": int(index),
			"from":  from,
			"to":    to,
		})
	}

	out := map[string]interface{}{
		"label":       label,
		"description": description,
	}
	if len(icons) > 0 {
		out["icons"] = icons
	}
	if len(mappers) > 0 {
		out["mappers"] = mappers
	}
	return out, nil
}
