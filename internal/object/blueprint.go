package object

import (
	"github.com/ernie/blueprint-decoder/internal/entity"
	"github.com/ernie/blueprint-decoder/internal/fields"
	"github.com/ernie/blueprint-decoder/internal/linkresolve"
	"github.com/ernie/blueprint-decoder/internal/prototype"
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// DecodeBlueprint reads one blueprint body (spec.md §4.E "Blueprint", §6
// "Blueprint body"). globalIdx is the file's prototype index, used unless
// the blueprint declares has_removed_mods and supplies its own local index
// (spec.md §4.E "If has_removed_mods"). Equivalent to
// DecodeBlueprintSkippable with skipBad false.
func DecodeBlueprint(r *stream.Reader, globalIdx *prototype.Index, classes prototype.ClassTable, vctx *version.Context) (map[string]interface{}, error) {
	body, _, err := DecodeBlueprintSkippable(r, globalIdx, classes, vctx, false)
	return body, err
}

// DecodeBlueprintSkippable reads one blueprint body. When skipBad is true
// and a parse error occurs anywhere inside the body (content or local
// index), it seeks the stream past the blueprint's declared bounds and
// returns (nil, true, nil) instead of propagating the error (spec.md §9
// "Skip-bad recovery": "seeks the stream to (content_start + content_size)
// and, if removed-mods was set, additionally skips the local index"). Errors
// in the header fields preceding content_size are always fatal, since the
// bounds needed to skip aren't known yet.
func DecodeBlueprintSkippable(r *stream.Reader, globalIdx *prototype.Index, classes prototype.ClassTable, vctx *version.Context, skipBad bool) (body map[string]interface{}, skipped bool, err error) {
	label, err := r.String()
	if err != nil {
		return nil, false, err
	}
	if err := r.Expect(0x00); err != nil {
		return nil, false, err
	}
	hasRemovedMods, err := r.Bool()
	if err != nil {
		return nil, false, err
	}
	contentSize, err := r.VarCount()
	if err != nil {
		return nil, false, err
	}
	contentStart := r.Tell()
	contentEnd := contentStart + contentSize

	idx := globalIdx
	localIndexEnd := contentEnd
	if hasRemovedMods {
		r.Seek(contentEnd)
		localIndexDeclaredSize, err := r.VarCount()
		if err != nil {
			if skipBad {
				return nil, true, nil
			}
			return nil, false, err
		}
		localIndexContentStart := r.Tell()
		localIndexEnd = localIndexContentStart + localIndexDeclaredSize

		localIdx, err := prototype.ReadTable(r, classes)
		if err != nil {
			if skipBad {
				r.Seek(localIndexEnd)
				return nil, true, nil
			}
			return nil, false, err
		}
		idx = localIdx
		r.Seek(contentStart)
	}

	out, err := decodeBlueprintContent(r, idx, vctx)
	if err == nil && r.Tell()-contentStart != contentSize {
		err = &stream.ParseError{Offset: contentStart, Message: "blueprint content size mismatch"}
	}
	if err != nil {
		if skipBad {
			r.Seek(localIndexEnd)
			return nil, true, nil
		}
		return nil, false, err
	}

	if hasRemovedMods {
		r.Seek(localIndexEnd)
	}

	out["label"] = label
	return out, false, nil
}

func decodeBlueprintContent(r *stream.Reader, idx *prototype.Index, vctx *version.Context) (map[string]interface{}, error) {
	v, err := version.Read(r)
	if err != nil {
		return nil, err
	}
	restore := vctx.Push(v)
	defer restore()

	if err := r.Expect(0x00); err != nil {
		return nil, err
	}
	if _, err := ReadMigrations(r); err != nil {
		return nil, err
	}
	description, err := r.String()
	if err != nil {
		return nil, err
	}
	snapToGrid, err := ReadSnapToGrid(r, vctx)
	if err != nil {
		return nil, err
	}

	dec := entity.NewDecoder(idx, vctx)
	entities, _, err := dec.ReadList(r)
	if err != nil {
		return nil, err
	}
	schedules, err := ReadSchedules(r, idx, vctx)
	if err != nil {
		return nil, err
	}
	if err := linkresolve.Resolve(entities, schedules); err != nil {
		return nil, err
	}
	for i, e := range entities {
		e["entity_number"] = i + 1
	}

	tiles, err := ReadTiles(r, idx)
	if err != nil {
		return nil, err
	}
	icons, err := fields.ReadIcons(r, idx)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{
		"version":     v.String(),
		"description": description,
	}
	if snapToGrid != nil {
		for k, val := range snapToGrid {
			out[k] = val
		}
	}
	if len(entities) > 0 {
		anyEntities := make([]interface{}, len(entities))
		for i, e := range entities {
			anyEntities[i] = e
		}
		out["entities"] = anyEntities
	}
	if len(schedules) > 0 {
		out["schedules"] = schedules
	}
	if len(tiles) > 0 {
		out["tiles"] = tiles
	}
	if len(icons) > 0 {
		out["icons"] = icons
	}
	return out, nil
}
