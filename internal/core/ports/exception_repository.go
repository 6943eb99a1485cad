package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/exception"
)

// ExceptionRepository defines the persistence contract for staged exception
// rows awaiting merge into the canonical orders table.
type ExceptionRepository interface {
	// Add stages a new exception row.
	Add(ctx context.Context, row *exception.Row) error

	// ListOpen returns all open rows, oldest first, so repeated merge runs
	// process them in a stable order.
	ListOpen(ctx context.Context) ([]*exception.Row, error)

	// Delete removes a row after it has been merged or explicitly discarded
	// by an operator.
	Delete(ctx context.Context, id int64) error
}

// CacheInvalidator notifies the downstream cache layer that derived views of
// the orders table are stale. The cache itself is an external collaborator;
// failures are logged, never propagated into the business outcome.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, tags []string) error
}
