package commands

import (
	"context"
)

// StartOrderCommandHandler claims the tester slot on an order. The claim is
// pushed down to the storage layer as a conditional update, so two testers
// racing for the same order resolve to exactly one winner; the loser gets a
// conflict error.
//
// Example:
//
//	handler := NewStartOrderCommandHandler(uowFactory)
//	cmd, _ := NewStartOrderCommand(orderID, testerID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, errs.ErrConcurrentUpdateConflict) {
//	        // someone else got there first
//	    }
//	    return err
//	}
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderCommandHandler creates a handler for tester claims.
func NewStartOrderCommandHandler(uowFactory OrderUoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tester claim. The repository performs the claim as a
// single conditional update; this handler only reports the outcome.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
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
	if err := orderRepo.ClaimTester(ctx, cmd.OrderID(), cmd.TesterID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
