package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/stationlog"
	"fulfillment/internal/pkg/errs"
)

// RecordScanCommandHandler appends a scan event to the station log. Packer
// scans additionally backfill the matched order's tracking number when the
// order does not carry one yet; the label on the box is the first reliable
// sighting of it.
type RecordScanCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecordScanCommandHandler creates a handler for station scans.
func NewRecordScanCommandHandler(uowFactory UoWFactory) RecordScanCommandHandler {
	return RecordScanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the scan. The log write and the optional order backfill
// commit together.
func (h *RecordScanCommandHandler) Handle(ctx context.Context, cmd RecordScanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := stationlog.NewEntry(
		cmd.Kind(), cmd.RawTracking(), cmd.Serial(), cmd.SerialType(), cmd.OperatorID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	logRepo := uow.StationLogRepository()
	if err = logRepo.Record(ctx, entry); err != nil {
		return err
	}

	if cmd.Kind() == stationlog.Packer {
		if err = h.backfillOrderTracking(ctx, uow, entry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *RecordScanCommandHandler) backfillOrderTracking(
	ctx context.Context, uow UoW, entry *stationlog.Entry,
) error {
	orderRepo := uow.OrderRepository()

	matched, err := orderRepo.GetByTrackingLast8(ctx, entry.TrackingKey())
	if err != nil {
		// A packer scan with no matching order is normal early in the flow;
		// the reconciliation query will pick the entry up later.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if matched.TrackingNumber() != "" {
		return nil
	}

	matched.SetTrackingNumber(entry.RawTracking())
	return orderRepo.Update(ctx, matched)
}
