// Package prototype implements the per-file prototype table (spec.md §4.B):
// the id->name maps used to resolve the signals, recipes, and entity names
// referenced throughout a library file, and the prototype-class->kind
// classifier that the entity dispatcher and signal readers depend on.
package prototype

import (
	"fmt"

	"github.com/ernie/blueprint-decoder/internal/stream"
)

// Kind is the coarse bucket every prototype class classifies into. Each kind
// has its own ID space (spec.md §3 "Prototype index").
type Kind int

const (
	Item Kind = iota
	Fluid
	VirtualSignal
	Tile
	Entity
	Recipe
)

func (k Kind) String() string {
	switch k {
	case Item:
		return "item"
	case Fluid:
		return "fluid"
	case VirtualSignal:
		return "virtual-signal"
	case Tile:
		return "tile"
	case Entity:
		return "entity"
	case Recipe:
		return "recipe"
	default:
		return "unknown"
	}
}

// Entry is one (class, name) pair registered under a (kind, id) key.
type Entry struct {
	Class string
	Name  string
}

// ClassTable maps a prototype-class string (as read from the file) to the
// kind it classifies into. DefaultClassTable covers the vanilla classes;
// internal/config lets a deployment extend it for mods that introduce new
// prototype classes, per spec.md §4.B "the decoder must accept a
// classification table covering at least all vanilla prototype classes."
type ClassTable map[string]Kind

// DefaultClassTable is the fixed vanilla class->kind table. "flying-text" is
// the documented special case: it classifies as Entity so removed-mod
// entities can still carry a placeholder name (spec.md §4.B).
func DefaultClassTable() ClassTable {
	t := ClassTable{
		"flying-text": Entity,

		"item":              Item,
		"tool":              Item,
		"ammo":              Item,
		"module":            Item,
		"gun":               Item,
		"armor":             Item,
		"capsule":           Item,
		"repair-tool":       Item,
		"mining-tool":       Item,
		"item-with-entity-data": Item,
		"item-with-label":  Item,
		"item-with-inventory": Item,
		"blueprint":         Item,
		"blueprint-book":    Item,
		"upgrade-item":      Item,
		"deconstruction-item": Item,
		"spidertron-remote": Item,
		"rail-planner":      Item,
		"space-platform-starter-pack": Item,

		"fluid": Fluid,

		"virtual-signal": VirtualSignal,

		"tile": Tile,

		"recipe": Recipe,
		"recipe-category": Recipe,

		"container":                   Entity,
		"logistic-container":         Entity,
		"infinity-container":         Entity,
		"storage-tank":                Entity,
		"transport-belt":              Entity,
		"underground-belt":            Entity,
		"splitter":                    Entity,
		"loader":                      Entity,
		"loader-1x1":                  Entity,
		"linked-belt":                 Entity,
		"linked-container":            Entity,
		"inserter":                    Entity,
		"electric-pole":               Entity,
		"pipe":                        Entity,
		"pipe-to-ground":              Entity,
		"infinity-pipe":               Entity,
		"pump":                        Entity,
		"straight-rail":               Entity,
		"curved-rail":                 Entity,
		"train-stop":                  Entity,
		"rail-signal":                 Entity,
		"rail-chain-signal":           Entity,
		"locomotive":                  Entity,
		"cargo-wagon":                 Entity,
		"fluid-wagon":                 Entity,
		"artillery-wagon":             Entity,
		"roboport":                    Entity,
		"lamp":                        Entity,
		"arithmetic-combinator":       Entity,
		"decider-combinator":          Entity,
		"constant-combinator":         Entity,
		"power-switch":                Entity,
		"programmable-speaker":        Entity,
		"boiler":                      Entity,
		"generator":                   Entity,
		"burner-generator":            Entity,
		"solar-panel":                 Entity,
		"accumulator":                 Entity,
		"reactor":                     Entity,
		"heat-pipe":                   Entity,
		"heat-interface":              Entity,
		"mining-drill":                Entity,
		"offshore-pump":               Entity,
		"furnace":                     Entity,
		"assembling-machine":          Entity,
		"lab":                         Entity,
		"beacon":                      Entity,
		"land-mine":                   Entity,
		"wall":                        Entity,
		"gate":                        Entity,
		"ammo-turret":                 Entity,
		"electric-turret":             Entity,
		"fluid-turret":                Entity,
		"artillery-turret":            Entity,
		"radar":                       Entity,
		"rocket-silo":                 Entity,
		"electric-energy-interface":   Entity,
		"character":                   Entity,
		"unit-spawner":                Entity,
		"unit":                        Entity,
		"simple-entity":               Entity,
		"simple-entity-with-owner":    Entity,
		"simple-entity-with-force":    Entity,
	}
	return t
}

// Index is one file's (or one blueprint local override's) prototype table.
type Index struct {
	classes ClassTable
	byKind  [6]map[uint32]Entry
}

// NewIndex returns an empty index classifying classes through classes.
func NewIndex(classes ClassTable) *Index {
	idx := &Index{classes: classes}
	for i := range idx.byKind {
		idx.byKind[i] = make(map[uint32]Entry)
	}
	return idx
}

// Add registers id -> {class, name} after classifying class through the
// index's class table. ID 0 is reserved for "absent" and is always rejected;
// a duplicate ID within the resolved kind is rejected; an unrecognized class
// is rejected (spec.md §4.B).
func (idx *Index) Add(class string, id uint32, name string) error {
	kind, ok := idx.classes[class]
	if !ok {
		return fmt.Errorf("unknown prototype class %q", class)
	}
	if id == 0 {
		return fmt.Errorf("prototype id 0 is reserved (class %q, name %q)", class, name)
	}
	if _, exists := idx.byKind[kind][id]; exists {
		return fmt.Errorf("duplicate prototype id %d for kind %s", id, kind)
	}
	idx.byKind[kind][id] = Entry{Class: class, Name: name}
	return nil
}

// Lookup returns the entry registered for (kind, id), or false if absent.
func (idx *Index) Lookup(kind Kind, id uint32) (Entry, bool) {
	if id == 0 {
		return Entry{}, false
	}
	e, ok := idx.byKind[kind][id]
	return e, ok
}

// ReadTable parses the count16-prefixed list of prototype-class blocks
// (spec.md §6 "Library file layout", §4.B). The tile class uses 1-byte
// counts and 1-byte IDs; every other class is preceded by a literal 0x00
// byte and then uses 2-byte counts and 2-byte IDs — an asymmetry the source
// format requires implementers to replicate exactly.
func ReadTable(r *stream.Reader, classes ClassTable) (*Index, error) {
	idx := NewIndex(classes)

	classCount, err := r.Count16()
	if err != nil {
		return nil, err
	}

	for i := 0; i < classCount; i++ {
		className, err := r.String()
		if err != nil {
			return nil, err
		}

		if className == "tile" {
			n, err := r.Count8()
			if err != nil {
				return nil, err
			}
			for j := 0; j < n; j++ {
				id, err := r.U8()
				if err != nil {
					return nil, err
				}
				name, err := r.String()
				if err != nil {
					return nil, err
				}
				if err := idx.Add(className, uint32(id), name); err != nil {
					return nil, err
				}
			}
			continue
		}

		if err := r.Expect(0x00); err != nil {
			return nil, err
		}
		n, err := r.Count16()
		if err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			id, err := r.U16()
			if err != nil {
				return nil, err
			}
			name, err := r.String()
			if err != nil {
				return nil, err
			}
			if err := idx.Add(className, uint32(id), name); err != nil {
				return nil, err
			}
		}
	}

	return idx, nil
}
