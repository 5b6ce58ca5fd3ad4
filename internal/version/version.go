// Package version implements the library file's four-field version number,
// its total ordering, and the ambient "currently-parsing version" context
// that gates optional fields throughout the entity decoders (spec.md §4.D
// "Version gates", §5, §9 "Global version state").
package version

import (
	"fmt"

	"github.com/ernie/blueprint-decoder/internal/stream"
)

// Version is the four 16-bit-field version number stored at the top of the
// library file and of every object body (blueprint, book, ...).
type Version struct {
	Major, Minor, Patch, Build uint16
}

// Read parses a Version: four consecutive u16 fields.
func Read(r *stream.Reader) (Version, error) {
	var v Version
	var err error
	if v.Major, err = r.U16(); err != nil {
		return v, err
	}
	if v.Minor, err = r.U16(); err != nil {
		return v, err
	}
	if v.Patch, err = r.U16(); err != nil {
		return v, err
	}
	if v.Build, err = r.U16(); err != nil {
		return v, err
	}
	return v, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Compare returns -1, 0, or 1 as v is lexicographically less than, equal to,
// or greater than o, comparing major, then minor, then patch, then build.
func (v Version) Compare(o Version) int {
	for _, pair := range [][2]uint16{
		{v.Major, o.Major},
		{v.Minor, o.Minor},
		{v.Patch, o.Patch},
		{v.Build, o.Build},
	} {
		if pair[0] != pair[1] {
			if pair[0] < pair[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v >= gate.
func (v Version) AtLeast(gate Version) bool { return v.Compare(gate) >= 0 }

// Named version gates from spec.md §4.D "Version gates".
var (
	V_1_1_0_0    = Version{1, 1, 0, 0}
	STABLE_V_1_1 = Version{1, 1, 19, 0}
	V_1_1_4_0    = Version{1, 1, 4, 0}
	V_1_1_43_0   = Version{1, 1, 43, 0}
	V_1_1_51_4   = Version{1, 1, 51, 4}
	V_1_1_62_5   = Version{1, 1, 62, 5}
)

// Context carries the "currently-parsing version" that version-gated field
// readers consult. spec.md §9 re-architects the source's process-wide global
// as an explicit, stack-scoped value: each object decoder pushes its own
// version on entry and the caller restores the prior value on exit, so
// recursion into a nested object with its own version (a blueprint inside a
// library, a blueprint inside a book) behaves correctly without any shared
// mutable global.
type Context struct {
	stack []Version
}

// NewContext returns an empty version context.
func NewContext() *Context {
	return &Context{}
}

// Push enters a new scope with v as the active version, returning a restore
// function that MUST be called (typically via defer) on every exit path to
// pop the scope, matching spec.md §5's "scoped acquisition ... with
// guaranteed release on all exit paths".
func (c *Context) Push(v Version) (restore func()) {
	c.stack = append(c.stack, v)
	depth := len(c.stack)
	return func() {
		if len(c.stack) != depth {
			panic("version.Context: unbalanced Push/restore")
		}
		c.stack = c.stack[:depth-1]
	}
}

// Current returns the active version, or the zero Version if no scope is
// active (callers should always be inside a Push scope during decode).
func (c *Context) Current() Version {
	if len(c.stack) == 0 {
		return Version{}
	}
	return c.stack[len(c.stack)-1]
}
