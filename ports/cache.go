package ports

import (
	"context"

	"cogmetrics/domain/core"
	"cogmetrics/domain/metrics"
)

// SnapshotCachePort caches computed metric snapshots keyed by input hash.
// The snapshot is the flat numeric summary; composed prose is always built
// fresh so catalog updates take effect without invalidating the cache.
type SnapshotCachePort interface {
	// Get returns the cached snapshot for an input hash, if present
	Get(ctx context.Context, inputHash core.InputHash) (*metrics.Snapshot, bool, error)

	// Put stores a snapshot under its input hash
	Put(ctx context.Context, inputHash core.InputHash, snap *metrics.Snapshot) error

	// Purge removes entries older than the retention window
	Purge(ctx context.Context, maxAgeSeconds int64) (int64, error)
}
