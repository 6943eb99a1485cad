package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// How many times a lost undo race is retried before reporting it as a
// conflict. Each retry re-selects, so two racing undos converge on two
// distinct entries almost immediately.
const undoMaxAttempts = 3

// UndoResult reports what an undo removed and what is left, oldest first, so
// the caller can re-render the scan state without a second round trip.
type UndoResult struct {
	RemovedSerial    string
	RemainingSerials []string
}

// UndoLastTechScanCommandHandler deletes the single most recent tech scan.
// The delete is scoped to the id of the entry it selected; if another undo
// removed that exact row first, zero rows are affected and the handler simply
// selects again. Two concurrent undos therefore remove two distinct entries,
// never the same one twice.
type UndoLastTechScanCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewUndoLastTechScanCommandHandler creates a handler for tech scan undo.
func NewUndoLastTechScanCommandHandler(uowFactory StationUoWFactory) UndoLastTechScanCommandHandler {
	return UndoLastTechScanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the latest matching tech entry and returns the removed
// serial plus the remaining ones. No matching entry at all is NotFound; a
// persistent lost race is a Conflict.
func (h *UndoLastTechScanCommandHandler) Handle(
	ctx context.Context, cmd UndoLastTechScanCommand,
) (UndoResult, error) {
	if err := cmd.Validate(); err != nil {
		return UndoResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UndoResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	logRepo := uow.StationLogRepository()

	var removedSerial string
	removed := false
	for attempt := 0; attempt < undoMaxAttempts && !removed; attempt++ {
		entries, err := logRepo.FindTechByTracking(ctx, cmd.TrackingKey(), cmd.OperatorID())
		if err != nil {
			return UndoResult{}, err
		}
		if len(entries) == 0 {
			return UndoResult{}, errs.NewObjectNotFoundError("tracking", cmd.TrackingKey().Raw())
		}

		newest := entries[0]
		removed, err = logRepo.DeleteEntry(ctx, newest.ID())
		if err != nil {
			return UndoResult{}, err
		}
		if removed {
			removedSerial = newest.SerialNumber()
		}
	}
	if !removed {
		return UndoResult{}, errs.NewConflictError("undoLastTechScan")
	}

	remaining, err := logRepo.ListTechSerials(ctx, cmd.TrackingKey())
	if err != nil {
		return UndoResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UndoResult{}, err
	}

	return UndoResult{
		RemovedSerial:    removedSerial,
		RemainingSerials: remaining,
	}, nil
}
