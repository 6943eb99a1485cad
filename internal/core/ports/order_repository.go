package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// AssignmentPatch is a partial update of an order's assignment fields. Only
// fields with their Set flag raised are touched; a Set flag with a nil value
// clears the field. An all-clear patch is invalid input.
type AssignmentPatch struct {
	TesterID  *kernel.StaffID
	SetTester bool

	PackerID  *kernel.StaffID
	SetPacker bool

	ShipByDate *time.Time
	SetShipBy  bool

	OutOfStockReason *string
	SetOutOfStock    bool
}

// Empty reports whether the patch touches nothing.
func (p AssignmentPatch) Empty() bool {
	return !p.SetTester && !p.SetPacker && !p.SetShipBy && !p.SetOutOfStock
}

// DeleteOutcome is the per-id result of a bulk delete. Bulk operations report
// each id's outcome rather than a single boolean.
type DeleteOutcome struct {
	ID      int64
	Deleted bool
}

// OrderRepository defines the persistence contract for order aggregates.
//
// Operations that race under concurrency (ClaimTester, AppendSkip) are
// specified as single atomic statements at the storage layer, never
// read-then-write from the caller.
type OrderRepository interface {
	// Add persists a new order and assigns its internal id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its internal id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByTrackingLast8 retrieves the order whose stored tracking number
	// shares the key's last-8 projection. Orders without a tracking number
	// are excluded. When several match, the highest internal id wins.
	GetByTrackingLast8(ctx context.Context, key kernel.TrackingKey) (*order.Order, error)

	// FindIDByCanonical18 returns the internal id of the order whose tracking
	// number shares the key's capped canonical projection, or ErrObjectNotFound.
	FindIDByCanonical18(ctx context.Context, key kernel.TrackingKey) (int64, error)

	// ExistsByExternalID reports whether an order with the external reference
	// is already present.
	ExistsByExternalID(ctx context.Context, externalOrderID string) (bool, error)

	// ClaimTester assigns the tester only if none is set, as one conditional
	// statement. A lost race surfaces as a Conflict error.
	ClaimTester(ctx context.Context, orderID int64, staffID kernel.StaffID) error

	// AppendSkip atomically appends the staff id to the order's skip list.
	// Repeats are preserved; concurrent appends never lose updates.
	AppendSkip(ctx context.Context, orderID int64, staffID kernel.StaffID) error

	// AssignFields applies a partial assignment update.
	AssignFields(ctx context.Context, orderID int64, patch AssignmentPatch) error

	// SetMissingParts records the out-of-stock reason without touching
	// tester or packer assignment.
	SetMissingParts(ctx context.Context, orderID int64, reason string) error

	// MarkShipped flips the shipped flag false to true. Already-shipped rows
	// are left untouched.
	MarkShipped(ctx context.Context, orderID int64) error

	// Delete permanently removes the given orders, reporting each id's
	// outcome.
	Delete(ctx context.Context, ids []int64) ([]DeleteOutcome, error)

	// NormalizeStatuses rewrites rows holding known-invalid status tokens to
	// their canonical form and returns the number of rows fixed. Safe to run
	// any number of times.
	NormalizeStatuses(ctx context.Context) (int64, error)
}
