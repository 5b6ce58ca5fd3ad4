// Package history records batch-decode runs to a local SQLite ledger
// (spec.md §4.I): one row per file path, so repeated batch runs against a
// mod-testing directory can report deltas instead of just a flat log.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one decode-history row (spec.md §3 "Decode history record").
type Record struct {
	FilePath       string
	ContentHash    string // hex-encoded blake2b-256 digest
	DecodedAt      int64  // unix seconds
	SlotCount      int
	BlueprintCount int
	SkippedCount   int
	DurationMs     int64
	DecoderVersion string
}

// Store wraps a SQLite-backed ledger. Never consulted by the core decoder;
// purely an operational convenience for the CLI's -batch mode.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and ensures
// the history table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

const schema = `
CREATE TABLE IF NOT EXISTS decode_runs (
	file_path       TEXT PRIMARY KEY,
	content_hash    TEXT NOT NULL,
	decoded_at      INTEGER NOT NULL,
	slot_count      INTEGER NOT NULL,
	blueprint_count INTEGER NOT NULL,
	skipped_count   INTEGER NOT NULL,
	duration_ms     INTEGER NOT NULL,
	decoder_version TEXT NOT NULL
);`

// Put inserts or replaces the row for rec.FilePath.
func (s *Store) Put(rec Record) error {
	_, err := s.db.Exec(
		`INSERT INTO decode_runs
			(file_path, content_hash, decoded_at, slot_count, blueprint_count, skipped_count, duration_ms, decoder_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_path) DO UPDATE SET
			content_hash=excluded.content_hash,
			decoded_at=excluded.decoded_at,
			slot_count=excluded.slot_count,
			blueprint_count=excluded.blueprint_count,
			skipped_count=excluded.skipped_count,
			duration_ms=excluded.duration_ms,
			decoder_version=excluded.decoder_version`,
		rec.FilePath, rec.ContentHash, rec.DecodedAt, rec.SlotCount,
		rec.BlueprintCount, rec.SkippedCount, rec.DurationMs, rec.DecoderVersion,
	)
	return err
}

// Get returns the previously recorded row for filePath, if any.
func (s *Store) Get(filePath string) (Record, bool, error) {
	var rec Record
	rec.FilePath = filePath
	row := s.db.QueryRow(
		`SELECT content_hash, decoded_at, slot_count, blueprint_count, skipped_count, duration_ms, decoder_version
		FROM decode_runs WHERE file_path = ?`, filePath)
	err := row.Scan(&rec.ContentHash, &rec.DecodedAt, &rec.SlotCount, &rec.BlueprintCount, &rec.SkippedCount, &rec.DurationMs, &rec.DecoderVersion)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

// Now returns the current time for stamping records; a thin seam so callers
// (and tests) don't call time.Now directly.
func Now() int64 { return time.Now().Unix() }
