package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates new orders in "unassigned" status and rejects duplicate external
// order ids so a re-imported marketplace feed never produces two rows.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("11-09876-54321", "ThinkPad T14", "Refurbished", "LNV-T14", 1, "ebay-main")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command.
// Uses transaction to ensure order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	exists, err := orderRepo.ExistsByExternalID(ctx, cmd.ExternalOrderID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError("externalOrderID")
	}

	newOrder, err := order.NewOrder(
		cmd.ExternalOrderID(), cmd.ProductTitle(), cmd.Condition(), cmd.SKU(), cmd.Quantity(),
	)
	if err != nil {
		return err
	}
	newOrder.SetAccountSource(cmd.AccountSource())

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
