package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand claims an order for a tester. The claim is first-come:
// once any tester holds the order, later starts are rejected.
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	testerID kernel.StaffID

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a tester claim command for the given order.
func NewStartOrderCommand(orderID int64, testerID kernel.StaffID) (StartOrderCommand, error) {
	err := errors.Join(
		validateOrderID(orderID),
		testerID.Validate(),
	)
	if err != nil {
		return StartOrderCommand{}, err
	}

	return StartOrderCommand{
		orderID:  orderID,
		testerID: testerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c StartOrderCommand) OrderID() int64 { return c.orderID }

// TesterID returns the claiming tester.
func (c StartOrderCommand) TesterID() kernel.StaffID { return c.testerID }
