package commands

import (
	"context"
)

// NormalizeStatusesCommandHandler runs the idempotent status repair. The
// rewrite only touches rows currently holding an invalid token, so running
// it twice in a row fixes rows once and then does nothing.
type NormalizeStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewNormalizeStatusesCommandHandler creates a handler for status healing.
func NewNormalizeStatusesCommandHandler(uowFactory OrderUoWFactory) NormalizeStatusesCommandHandler {
	return NormalizeStatusesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle repairs invalid status tokens and returns the number of rows fixed.
func (h *NormalizeStatusesCommandHandler) Handle(
	ctx context.Context, cmd NormalizeStatusesCommand,
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

	orderRepo := uow.OrderRepository()
	fixed, err := orderRepo.NormalizeStatuses(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return fixed, nil
}
