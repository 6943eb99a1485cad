package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteOrdersCommandIsNotConstructed = errors.New(
	"DeleteOrdersCommand must be created via NewDeleteOrdersCommand constructor",
)

// DeleteOrdersCommand permanently removes a batch of orders. Deletion is
// best-effort per id: rows that exist are removed, missing ids are reported
// back instead of failing the whole batch.
type DeleteOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []int64

	guard guard.ConstructorGuard
}

// NewDeleteOrdersCommand creates a bulk delete command. At least one id is
// required and every id must be positive.
func NewDeleteOrdersCommand(orderIDs []int64) (DeleteOrdersCommand, error) {
	if len(orderIDs) == 0 {
		return DeleteOrdersCommand{}, errs.NewValueIsRequiredError("orderIDs")
	}
	for _, id := range orderIDs {
		if err := validateOrderID(id); err != nil {
			return DeleteOrdersCommand{}, err
		}
	}

	ids := make([]int64, len(orderIDs))
	copy(ids, orderIDs)

	return DeleteOrdersCommand{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrdersCommandIsNotConstructed)
}

// OrderIDs returns the ids slated for removal.
func (c DeleteOrdersCommand) OrderIDs() []int64 { return c.orderIDs }
