package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stationlog"
)

// StationLogRepository defines the persistence contract for per-station scan
// events. Entries are append-only; the only removals are the explicit undo
// (single entry, scoped to a fetched id) and the bulk delete-by-tracking,
// which are distinct operations and must never be conflated.
type StationLogRepository interface {
	// Record appends a scan event and assigns its internal id.
	Record(ctx context.Context, entry *stationlog.Entry) error

	// FindUnconsumedByTrackingSuffix returns the entries of the given kind
	// whose last-8 key equals the key's last-8 projection and that have not
	// been linked forward yet. Ordering is unspecified; callers apply the
	// tie-break.
	FindUnconsumedByTrackingSuffix(ctx context.Context, kind stationlog.Kind, key kernel.TrackingKey) ([]*stationlog.Entry, error)

	// MarkConsumed raises the entry's downstream link marker so future
	// suffix matches skip it.
	MarkConsumed(ctx context.Context, id int64) error

	// FindTechByTracking returns tech entries carrying a serial for the
	// key's last-8 projection, optionally restricted to one operator,
	// newest first (event time desc, then id desc).
	FindTechByTracking(ctx context.Context, key kernel.TrackingKey, operatorID *kernel.StaffID) ([]*stationlog.Entry, error)

	// DeleteEntry removes exactly the entry with the given id. Returns false
	// when the row was already gone, which concurrent undo callers treat as
	// a benign lost race.
	DeleteEntry(ctx context.Context, id int64) (bool, error)

	// DeleteTechByTracking removes all tech entries matching the key's
	// last-8 projection and returns the count. This is the destructive bulk
	// operation, not the single-entry undo.
	DeleteTechByTracking(ctx context.Context, key kernel.TrackingKey) (int64, error)

	// ListTechSerials returns the serials recorded for the key's last-8
	// projection, oldest first.
	ListTechSerials(ctx context.Context, key kernel.TrackingKey) ([]string, error)

	// HasPackEvent reports whether any packer entry matches the key's capped
	// canonical projection.
	HasPackEvent(ctx context.Context, key kernel.TrackingKey) (bool, error)
}
