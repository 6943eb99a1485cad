package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrMarkShippedCommandIsNotConstructed = errors.New(
	"MarkShippedCommand must be created via NewMarkShippedCommand constructor",
)

// MarkShippedCommand marks an order as handed to the carrier. The flag only
// moves false to true; shipping cannot be undone through this command.
type MarkShippedCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkShippedCommand creates a shipment confirmation command.
func NewMarkShippedCommand(orderID int64) (MarkShippedCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return MarkShippedCommand{}, err
	}

	return MarkShippedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkShippedCommandIsNotConstructed)
}

// OrderID returns the shipped order.
func (c MarkShippedCommand) OrderID() int64 { return c.orderID }
