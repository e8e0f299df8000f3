package sqlitecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cogmetrics/domain/core"
	"cogmetrics/domain/metrics"
	"cogmetrics/ports"

	_ "modernc.org/sqlite"
)

// Cache is a local SQLite snapshot cache keyed by input hash. It serves
// deployments without Postgres and cuts repository round-trips when the same
// raw input is resubmitted.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the cache database at path and ensures its schema
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot cache: %w", err)
	}
	// SQLite handles one writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			input_hash TEXT PRIMARY KEY,
			snapshot   TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached snapshot for an input hash, if present
func (c *Cache) Get(ctx context.Context, inputHash core.InputHash) (*metrics.Snapshot, bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx,
		`SELECT snapshot FROM snapshots WHERE input_hash = ?`, inputHash.String(),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var snap metrics.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		// A corrupt row is treated as a miss and overwritten on the next Put
		return nil, false, nil
	}
	return &snap, true, nil
}

// Put stores a snapshot under its input hash
func (c *Cache) Put(ctx context.Context, inputHash core.InputHash, snap *metrics.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO snapshots (input_hash, snapshot, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (input_hash) DO UPDATE
		SET snapshot = excluded.snapshot, created_at = excluded.created_at
	`, inputHash.String(), string(payload), time.Now().Unix())
	return err
}

// Purge removes entries older than the retention window
func (c *Cache) Purge(ctx context.Context, maxAgeSeconds int64) (int64, error) {
	cutoff := time.Now().Unix() - maxAgeSeconds
	res, err := c.db.ExecContext(ctx, `DELETE FROM snapshots WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ ports.SnapshotCachePort = (*Cache)(nil)
