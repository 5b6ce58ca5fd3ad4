// Package object implements the object decoders of spec.md §4.E: blueprint,
// blueprint-book (recursive), deconstruction-planner, and upgrade-planner,
// plus the migration list and schedule readers their bodies share.
package object

import "github.com/ernie/blueprint-decoder/internal/stream"

// Migration is a (mod-name, migration-file) pair recorded when the file was
// last written. The decoder reads these structurally but never consults
// them further (spec.md GLOSSARY "Migration").
type Migration struct {
	ModName       string
	MigrationFile string
}

// ReadMigrations reads the count8-prefixed list of {string, string} pairs
// shared by the library header (§4.F) and every blueprint's content (§4.E);
// book and planner bodies carry no migration list.
func ReadMigrations(r *stream.Reader) ([]Migration, error) {
	n, err := r.Count8()
	if err != nil {
		return nil, err
	}
	out := make([]Migration, n)
	for i := range out {
		if out[i].ModName, err = r.String(); err != nil {
			return nil, err
		}
		if out[i].MigrationFile, err = r.String(); err != nil {
			return nil, err
		}
	}
	return out, nil
}
