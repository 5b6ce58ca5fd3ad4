package entity

import "github.com/ernie/blueprint-decoder/internal/stream"

// Position is an entity's location in tile coordinates, stored on the wire
// as fixed-point fractions of 256 (spec.md §3 "Entity", §4.D "Invariants").
type Position struct {
	X, Y float64
}

const positionAbsoluteSentinel = 0x7FFF

// readPosition applies the position lookahead rule: if the first 16-bit
// field read equals 0x7FFF, the position is absolute (two signed 32-bit
// values /256); otherwise that same field is the signed 16-bit x delta from
// prev, followed by a signed 16-bit y delta (spec.md §4.D "Invariants", §8
// "Position lookahead boundary").
func readPosition(r *stream.Reader, prev Position) (Position, error) {
	first, err := r.S16()
	if err != nil {
		return Position{}, err
	}
	if uint16(first) == positionAbsoluteSentinel {
		xs, err := r.S32()
		if err != nil {
			return Position{}, err
		}
		ys, err := r.S32()
		if err != nil {
			return Position{}, err
		}
		return Position{X: float64(xs) / 256, Y: float64(ys) / 256}, nil
	}

	dy, err := r.S16()
	if err != nil {
		return Position{}, err
	}
	return Position{
		X: prev.X + float64(first)/256,
		Y: prev.Y + float64(dy)/256,
	}, nil
}

func (p Position) toMap() map[string]interface{} {
	return map[string]interface{}{"x": p.X, "y": p.Y}
}
