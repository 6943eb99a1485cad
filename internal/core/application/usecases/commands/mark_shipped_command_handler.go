package commands

import (
	"context"
)

// MarkShippedCommandHandler confirms carrier handoff. The storage layer flips
// the shipped flag with a conditional update so a repeated confirmation is a
// harmless no-op rather than an error.
type MarkShippedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkShippedCommandHandler creates a handler for shipment confirmations.
func NewMarkShippedCommandHandler(uowFactory OrderUoWFactory) MarkShippedCommandHandler {
	return MarkShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order shipped.
func (h *MarkShippedCommandHandler) Handle(ctx context.Context, cmd MarkShippedCommand) error {
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
	if err := orderRepo.MarkShipped(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
