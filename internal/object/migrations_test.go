package object

import (
	"testing"

	"github.com/ernie/blueprint-decoder/internal/stream"
)

func TestReadMigrations(t *testing.T) {
	buf := []byte{
		0x02,                               // count8 = 2
		0x04, 'm', 'o', 'd', 'a',           // "moda" (4 bytes... note below)
		0x03, 'f', '0', '1',                // migration file
		0x04, 'm', 'o', 'd', 'b',
		0x03, 'f', '0', '2',
	}
	// fix lengths: "moda" and "modb" are 4 chars, matches the 0x04 prefix.
	migrations, err := ReadMigrations(stream.New(buf))
	if err != nil {
		t.Fatalf("ReadMigrations: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].ModName != "moda" || migrations[0].MigrationFile != "f01" {
		t.Fatalf("unexpected first migration: %+v", migrations[0])
	}
	if migrations[1].ModName != "modb" || migrations[1].MigrationFile != "f02" {
		t.Fatalf("unexpected second migration: %+v", migrations[1])
	}
}

func TestReadMigrationsEmpty(t *testing.T) {
	migrations, err := ReadMigrations(stream.New([]byte{0x00}))
	if err != nil {
		t.Fatalf("ReadMigrations: %v", err)
	}
	if len(migrations) != 0 {
		t.Fatalf("expected no migrations, got %d", len(migrations))
	}
}
