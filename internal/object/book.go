package object

import (
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// DecodeBlueprintBook reads label, description, icons, its own slot list,
// the active_index byte, and a trailing zero byte (spec.md §4.E
// "Blueprint-book"). It carries no version field of its own — nested
// blueprints inherit whatever version is active on vctx (the enclosing
// library or book).
func DecodeBlueprintBook(r *stream.Reader, idx *prototype.Index, classes prototype.ClassTable, vctx *version.Context, skipBad bool, skipped *int) (map[string]interface{}, error) {
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

	count, err := r.Count32()
	if err != nil {
		return nil, err
	}
	blueprints, err := ParseLibraryObjects(r, idx, classes, vctx, count, skipBad, skipped)
	if err != nil {
		return nil, err
	}

	activeIndex, err := r.U8()
	if err != nil {
		return nil, err
	}
	if err := r.Expect(0x00); err != nil {
		return nil, err
	}

	out := map[string]interface{}{
		"label":       label,
		"description": description,
		"active_index": int(activeIndex),
	}
	if len(icons) > 0 {
		out["icons"] = icons
	}
	if len(blueprints) > 0 {
		out["blueprints"] = blueprints
	}
	return out, nil
}
