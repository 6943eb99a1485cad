package commands

import (
	"context"
)

// DeleteTechScansCommandHandler bulk-removes tech scans for one tracking key
// and reports how many rows went away. Zero matches is a valid outcome, not
// an error; the caller asked for a clean slate and got one.
type DeleteTechScansCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewDeleteTechScansCommandHandler creates a handler for bulk tech scan
// deletion.
func NewDeleteTechScansCommandHandler(uowFactory StationUoWFactory) DeleteTechScansCommandHandler {
	return DeleteTechScansCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes all matching tech entries and returns the count.
func (h *DeleteTechScansCommandHandler) Handle(
	ctx context.Context, cmd DeleteTechScansCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	logRepo := uow.StationLogRepository()
	deleted, err := logRepo.DeleteTechByTracking(ctx, cmd.TrackingKey())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
