package commands

import (
	"context"
)

// SkipOrderCommandHandler appends a tester to an order's skip history. The
// append happens inside the database so concurrent skips from several testers
// all land without overwriting each other.
type SkipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSkipOrderCommandHandler creates a handler for skip recording.
func NewSkipOrderCommandHandler(uowFactory OrderUoWFactory) SkipOrderCommandHandler {
	return SkipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the skip. Order status is untouched; a skipped order stays
// available to every other tester.
func (h *SkipOrderCommandHandler) Handle(ctx context.Context, cmd SkipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err := orderRepo.AppendSkip(ctx, cmd.OrderID(), cmd.TesterID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
