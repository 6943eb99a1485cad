package commands

import (
	"context"
)

// AssignOrderCommandHandler applies partial assignment updates. The patch
// is pushed down to the storage layer so only listed fields are written; the
// handler then recomputes and persists each order's authoritative status from
// the resulting facts. All listed orders are updated in one transaction, so a
// batch either lands whole or not at all.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for assignment updates.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the patch to every listed order and refreshes the derived
// statuses in one transaction.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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
	for _, orderID := range cmd.OrderIDs() {
		if err := orderRepo.AssignFields(ctx, orderID, cmd.Patch()); err != nil {
			return err
		}

		updated, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}
		updated.RefreshStatus()
		if err = orderRepo.Update(ctx, updated); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
