package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// Cache tags covering derived order views. Deletion changes every one of
// them, so all are flushed together.
var orderCacheTags = []string{"orders", "unshipped-orders", "tech-scan-state"}

// DeleteOrdersCommandHandler removes orders in bulk and reports a per-id
// outcome. Cache invalidation runs after commit and is advisory: a cache
// that cannot be reached is logged, not surfaced, because the deletion
// itself already succeeded.
type DeleteOrdersCommandHandler struct {
	uowFactory  OrderUoWFactory
	invalidator ports.CacheInvalidator
}

// NewDeleteOrdersCommandHandler creates a handler for bulk order deletion.
func NewDeleteOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	invalidator ports.CacheInvalidator,
) DeleteOrdersCommandHandler {
	return DeleteOrdersCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle deletes the requested orders. Missing ids come back with
// Deleted=false instead of aborting the batch.
func (h *DeleteOrdersCommandHandler) Handle(
	ctx context.Context, cmd DeleteOrdersCommand,
) ([]ports.DeleteOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	outcomes, err := orderRepo.Delete(ctx, cmd.OrderIDs())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.invalidator != nil {
		if err = h.invalidator.Invalidate(ctx, orderCacheTags); err != nil {
			slog.Warn("cache invalidation failed after order deletion", "error", err)
		}
	}

	return outcomes, nil
}
