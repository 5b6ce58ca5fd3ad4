package object

import (
	"github.com/ernie/blueprint-decoder/internal/stream"
	"github.com/ernie/blueprint-decoder/internal/version"
)

// ReadSnapToGrid reads a blueprint's optional snap-to-grid setting: a
// presence flag, width/height tile dimensions, and the "absolute snapping"
// toggle; from STABLE_V_1_1 it additionally carries an optional
// position-relative-to-grid offset (spec.md §4.D "STABLE_V_1_1 (d)").
func ReadSnapToGrid(r *stream.Reader, vctx *version.Context) (map[string]interface{}, error) {
	has, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	width, err := r.U32()
	if err != nil {
		return nil, err
	}
	height, err := r.U32()
	if err != nil {
		return nil, err
	}
	absolute, err := r.Bool()
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{
		"snap_to_grid":      map[string]interface{}{"x": width, "y": height},
		"absolute_snapping": absolute,
	}

	if vctx.Current().AtLeast(version.STABLE_V_1_1) {
		hasRelative, err := r.Bool()
		if err != nil {
			return nil, err
		}
		if hasRelative {
			rx, err := r.S32()
			if err != nil {
				return nil, err
			}
			ry, err := r.S32()
			if err != nil {
				return nil, err
			}
			out["position_relative_to_grid"] = map[string]interface{}{"x": rx, "y": ry}
		}
	}

	return out, nil
}
