package object

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

var filterModeTable = []string{"whitelist", "blacklist"}
var tileSelectionModeTable = []string{"normal", "always", "never", "only"}

// readFilterListWithPlaceholders reads a leading u8-counted placeholder-name
// list for entries whose referenced prototype no longer exists (mirroring
// fields.ReadIcons's unknown-name-replacement mechanism, spec.md §4.E
// "Deconstruction-planner ... entity_filters (with unknown-name
// replacements)"), then a count32-prefixed {index, id} filter list with
// zero-based indices (spec.md §8 "0-based for deconstruction/upgrade-planner
// filters").
func readFilterListWithPlaceholders(r *stream.Reader, idx *prototype.Index, kind prototype.Kind) ([]interface{}, error) {
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

	n, err := r.Count32()
	if err != nil {
		return nil, err
	}
	nextPlaceholder := 0
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		index, err := r.U16()
		if err != nil {
			return nil, err
		}
		idOffset := r.Tell()
		id, err := r.U16()
		if err != nil {
			return nil, err
		}
		var name string
		if entry, ok := idx.Lookup(kind, uint32(id)); ok {
			name = entry.Name
		} else if nextPlaceholder < len(placeholders) {
			name = placeholders[nextPlaceholder]
			nextPlaceholder++
		} else {
			return nil, &stream.ParseError{Offset: idOffset, Message: "filter id unresolved and no placeholder available"}
		}
		out = append(out, map[string]interface{}{"index": int(index), "name": name})
	}
	return out, nil
}

// DecodeDeconstructionPlanner reads label, description, icons, and the
// entity/tile filter settings (spec.md §4.E "Deconstruction-planner").
func DecodeDeconstructionPlanner(r *stream.Reader, idx *prototype.Index, vctx *version.Context) (map[string]interface{}, error) {
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
	entityFilterMode, err := stream.MappedU8(r, filterModeTable)
	if err != nil {
		return nil, err
	}
	entityFilters, err := readFilterListWithPlaceholders(r, idx, prototype.Entity)
	if err != nil {
		return nil, err
	}
	treesAndRocksOnly, err := r.Bool()
	if err != nil {
		return nil, err
	}
	tileFilterMode, err := stream.MappedU8(r, filterModeTable)
	if err != nil {
		return nil, err
	}
	tileSelectionMode, err := stream.MappedU8(r, tileSelectionModeTable)
	if err != nil {
		return nil, err
	}
	tileFilters, err := readFilterListWithPlaceholders(r, idx, prototype.Tile)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{
		"label":               label,
		"description":         description,
		"entity_filter_mode":  entityFilterMode,
		"tile_filter_mode":    tileFilterMode,
		"tile_selection_mode": tileSelectionMode,
	}
	if len(icons) > 0 {
		out["icons"] = icons
	}
	if len(entityFilters) > 0 {
		out["entity_filters"] = entityFilters
	}
	if treesAndRocksOnly {
		out["trees_and_rocks_only"] = true
	}
	if len(tileFilters) > 0 {
		out["tile_filters"] = tileFilters
	}
	return out, nil
}
