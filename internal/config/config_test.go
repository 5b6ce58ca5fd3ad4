package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ernie/blueprint-decoder/internal/prototype"
)

func TestLoadAndClassTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
default_file: /mods/test/blueprint-storage.dat
skip_bad: true
classes:
  my-mod-special-entity: entity
monitor:
  port: 8099
  secret_source: /run/secrets/monitor.key
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.SkipBad || cfg.DefaultFile != "/mods/test/blueprint-storage.dat" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Monitor.Port != 8099 {
		t.Fatalf("Monitor.Port = %d, want 8099", cfg.Monitor.Port)
	}

	classes, err := cfg.ClassTable()
	if err != nil {
		t.Fatalf("ClassTable: %v", err)
	}
	if kind, ok := classes["my-mod-special-entity"]; !ok || kind != prototype.Entity {
		t.Fatalf("expected override class to classify as Entity, got (%v, %v)", kind, ok)
	}
	if kind, ok := classes["container"]; !ok || kind != prototype.Entity {
		t.Fatalf("expected default classes to still be present, got (%v, %v)", kind, ok)
	}
}

func TestClassTableRejectsUnknownKind(t *testing.T) {
	cfg := &Config{Classes: map[string]string{"weird-class": "not-a-real-kind"}}
	if _, err := cfg.ClassTable(); err == nil {
		t.Fatal("expected error for unknown kind name")
	}
}
