package history

import (
	"path/filepath"
	"testing"
)

func TestStorePutAndGet(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.sqlite")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	rec := Record{
		FilePath:       "/mods/test/blueprint-storage.dat",
		ContentHash:    ContentHash([]byte("file contents")),
		DecodedAt:      1700000000,
		SlotCount:      10,
		BlueprintCount: 4,
		SkippedCount:   1,
		DurationMs:     42,
		DecoderVersion: "0.1.0",
	}
	if err := store.Put(rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := store.Get(rec.FilePath)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected row to exist after Put")
	}
	if got.ContentHash != rec.ContentHash || got.BlueprintCount != rec.BlueprintCount {
		t.Fatalf("Get returned %+v, want %+v", got, rec)
	}

	rec.SkippedCount = 2
	if err := store.Put(rec); err != nil {
		t.Fatalf("Put (update): %v", err)
	}
	got, _, err = store.Get(rec.FilePath)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.SkippedCount != 2 {
		t.Fatalf("expected upsert to update skipped_count, got %d", got.SkippedCount)
	}
}

func TestStoreGetMissing(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.sqlite")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	_, ok, err := store.Get("/does/not/exist.dat")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected no row for an unrecorded path")
	}
}
