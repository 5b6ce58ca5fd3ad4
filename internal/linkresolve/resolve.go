// Package linkresolve implements the single post-parse link-resolution pass
// (spec.md §4.G): rewriting raw entity-ids recorded during entity decoding
// into 1-based entity numbers, wherever they appear — circuit connection
// peers, schedule locomotive lists, electric-pole neighbour lists, and
// linked-belt pairings.
package linkresolve

import "fmt"

// combinatorClasses are the prototype classes whose circuit_id is kept even
// when it equals 1 (spec.md §4.G "if the peer is NOT a combinator variant
// ... and circuit_id is 1, drop circuit_id").
var combinatorClasses = map[string]bool{
	"arithmetic-combinator": true,
	"decider-combinator":    true,
}

// Resolve rewrites every raw entity-id reachable from entities and
// schedules into the entity number of the entity registered under that raw
// id, in place. Each entity map must carry its transient "entity_id" (raw
// id) and "_class" (prototype class) keys on entry; both are consumed and
// removed. Returns an error if any raw id fails to resolve (spec.md §4.G
// "Missing raw IDs are a parse error").
func Resolve(entities []map[string]interface{}, schedules []interface{}) error {
	registry := make(map[uint32]int, len(entities))
	classByNumber := make(map[int]string, len(entities))

	for i, e := range entities {
		raw, ok := e["entity_id"].(uint32)
		if !ok {
			return fmt.Errorf("linkresolve: entity %d missing transient entity_id", i+1)
		}
		number := i + 1
		registry[raw] = number
		if class, ok := e["_class"].(string); ok {
			classByNumber[number] = class
		}
		delete(e, "entity_id")
		delete(e, "_class")
	}

	w := &walker{registry: registry, classByNumber: classByNumber}
	for _, e := range entities {
		if err := w.walk(e); err != nil {
			return err
		}
	}
	for _, s := range schedules {
		if err := w.walk(s); err != nil {
			return err
		}
	}
	return nil
}

type walker struct {
	registry      map[uint32]int
	classByNumber map[int]string
}

func (w *walker) resolve(raw uint32) (int, error) {
	num, ok := w.registry[raw]
	if !ok {
		return 0, fmt.Errorf("linkresolve: unresolved entity id %d", raw)
	}
	return num, nil
}

func (w *walker) rewriteRawIDList(v interface{}) error {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	for i, elem := range list {
		raw, ok := elem.(uint32)
		if !ok {
			continue
		}
		num, err := w.resolve(raw)
		if err != nil {
			return err
		}
		list[i] = num
	}
	return nil
}

// walk recursively rewrites raw entity-ids found anywhere under v.
func (w *walker) walk(v interface{}) error {
	switch node := v.(type) {
	case map[string]interface{}:
		if raw, ok := node["entity_id"].(uint32); ok {
			num, err := w.resolve(raw)
			if err != nil {
				return err
			}
			node["entity_id"] = num
			if cid, ok := node["circuit_id"].(int); ok && cid == 1 {
				if !combinatorClasses[w.classByNumber[num]] {
					delete(node, "circuit_id")
				}
			}
		}
		if raw, ok := node["belt_link"].(uint32); ok {
			num, err := w.resolve(raw)
			if err != nil {
				return err
			}
			node["belt_link"] = num
		}
		for key, val := range node {
			switch key {
			case "entity_id", "circuit_id", "belt_link":
				continue
			case "neighbours", "locomotives":
				if err := w.rewriteRawIDList(val); err != nil {
					return err
				}
			default:
				if err := w.walk(val); err != nil {
					return err
				}
			}
		}
	case []interface{}:
		for _, elem := range node {
			if err := w.walk(elem); err != nil {
				return err
			}
		}
	}
	return nil
}
