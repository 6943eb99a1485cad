package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSkipOrderCommandIsNotConstructed = errors.New(
	"SkipOrderCommand must be created via NewSkipOrderCommand constructor",
)

// SkipOrderCommand records that a tester declined an order. The skip history
// keeps every decline, including repeats from the same tester.
type SkipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	testerID kernel.StaffID

	guard guard.ConstructorGuard
}

// NewSkipOrderCommand creates a skip command for the given order and tester.
func NewSkipOrderCommand(orderID int64, testerID kernel.StaffID) (SkipOrderCommand, error) {
	err := errors.Join(
		validateOrderID(orderID),
		testerID.Validate(),
	)
	if err != nil {
		return SkipOrderCommand{}, err
	}

	return SkipOrderCommand{
		orderID:  orderID,
		testerID: testerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SkipOrderCommand) Validate() error {
	return c.guard.Validate(ErrSkipOrderCommandIsNotConstructed)
}

// OrderID returns the order being skipped.
func (c SkipOrderCommand) OrderID() int64 { return c.orderID }

// TesterID returns the declining tester.
func (c SkipOrderCommand) TesterID() kernel.StaffID { return c.testerID }
