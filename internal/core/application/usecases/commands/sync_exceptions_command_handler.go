package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/exception"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stationlog"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// SyncResult reports one exception sync pass. Processed counts every open
// row scanned; merged counts rows folded into an order and removed; skipped
// counts rows left alone, either unmatched or duplicates of data the orders
// table already holds.
type SyncResult struct {
	Processed int
	Merged    int
	Skipped   int
}

// SyncExceptionsCommandHandler is the exception merge engine. For each open
// staged row it looks for an order sharing the capped canonical tracking key,
// gap-fills the order's blank fields from the row, flips the order to shipped
// when a packer event exists for the key (consuming the packer entry that
// served as evidence), and removes the staged row. Rows
// duplicating an external order id already in the table are dropped without
// merging. Everything else stays open for the next pass.
//
// The whole pass runs in one transaction. The cron scheduler runs it as a
// single writer, so concurrent invocations of the merge critical section do
// not happen in normal operation; a second concurrent caller is stopped by
// the unique external order id constraint rather than by locking.
type SyncExceptionsCommandHandler struct {
	uowFactory UoWFactory
	reconciler *services.Reconciler
}

// NewSyncExceptionsCommandHandler creates the exception merge handler.
func NewSyncExceptionsCommandHandler(uowFactory UoWFactory) SyncExceptionsCommandHandler {
	return SyncExceptionsCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle runs one merge pass. Running it again immediately is safe: merged
// rows are gone and gap-filling an already-filled order changes nothing.
func (h *SyncExceptionsCommandHandler) Handle(
	ctx context.Context, cmd SyncExceptionsCommand,
) (SyncResult, error) {
	if err := cmd.Validate(); err != nil {
		return SyncResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SyncResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	excRepo := uow.ExceptionRepository()
	open, err := excRepo.ListOpen(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	var result SyncResult
	for _, row := range open {
		result.Processed++

		merged, err := h.mergeRow(ctx, uow, row)
		if err != nil {
			return SyncResult{}, err
		}
		if merged {
			result.Merged++
		} else {
			result.Skipped++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncResult{}, err
	}

	return result, nil
}

func (h *SyncExceptionsCommandHandler) mergeRow(
	ctx context.Context, uow UoW, row *exception.Row,
) (bool, error) {
	orderRepo := uow.OrderRepository()
	excRepo := uow.ExceptionRepository()

	key := row.TrackingKey()
	if key.IsZero() {
		return false, nil
	}

	orderID, err := orderRepo.FindIDByCanonical18(ctx, key)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return false, err
		}
		// No tracking match. A row whose external reference already exists is
		// a duplicate and is dropped; anything else waits for a later pass.
		if row.ExternalOrderID == "" {
			return false, nil
		}
		exists, existsErr := orderRepo.ExistsByExternalID(ctx, row.ExternalOrderID)
		if existsErr != nil {
			return false, existsErr
		}
		if exists {
			return false, excRepo.Delete(ctx, row.ID)
		}
		return false, nil
	}

	matched, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return false, err
	}

	matched.FillFrom(row.TrackingNumber, row.ProductTitle, row.Condition, row.SKU)

	packed, err := uow.StationLogRepository().HasPackEvent(ctx, key)
	if err != nil {
		return false, err
	}
	if packed {
		if err = matched.MarkShipped(); err != nil && !errors.Is(err, order.ErrAlreadyShipped) {
			return false, err
		}
		if err = h.consumePackEvidence(ctx, uow, key); err != nil {
			return false, err
		}
	}

	if err = orderRepo.Update(ctx, matched); err != nil {
		return false, err
	}
	if err = excRepo.Delete(ctx, row.ID); err != nil {
		return false, err
	}

	return true, nil
}

// consumePackEvidence links the packer entry that proved shipment forward by
// raising its consumed marker, so later suffix matches skip it. Evidence may
// match on the canonical key without any unconsumed suffix candidate left;
// that is not an error.
func (h *SyncExceptionsCommandHandler) consumePackEvidence(
	ctx context.Context, uow UoW, key kernel.TrackingKey,
) error {
	logRepo := uow.StationLogRepository()

	entries, err := logRepo.FindUnconsumedByTrackingSuffix(ctx, stationlog.Packer, key)
	if err != nil {
		return err
	}

	best := h.reconciler.BestEntry(entries)
	if best == nil {
		return nil
	}

	best.MarkConsumed()
	return logRepo.MarkConsumed(ctx, best.ID())
}
