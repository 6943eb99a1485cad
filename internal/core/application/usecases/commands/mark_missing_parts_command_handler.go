package commands

import (
	"context"
)

// MarkMissingPartsCommandHandler records the out-of-stock reason and moves
// the order to the missing-parts status. The storage layer applies the block
// as a single conditional update, so tester and packer assignments and the
// skip history are never rewritten from a stale read.
type MarkMissingPartsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkMissingPartsCommandHandler creates a handler for stock blocks.
func NewMarkMissingPartsCommandHandler(uowFactory OrderUoWFactory) MarkMissingPartsCommandHandler {
	return MarkMissingPartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the block as one conditional statement.
func (h *MarkMissingPartsCommandHandler) Handle(ctx context.Context, cmd MarkMissingPartsCommand) error {
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
	if err := orderRepo.SetMissingParts(ctx, cmd.OrderID(), cmd.Reason()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
