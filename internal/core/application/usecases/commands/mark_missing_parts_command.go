package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkMissingPartsCommandIsNotConstructed = errors.New(
	"MarkMissingPartsCommand must be created via NewMarkMissingPartsCommand constructor",
)

// MarkMissingPartsCommand flags an order as blocked on stock. The reason is
// mandatory; an empty reason clears the flag instead, which is a separate
// intent and goes through the assignment flow.
type MarkMissingPartsCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	reason  string

	guard guard.ConstructorGuard
}

// NewMarkMissingPartsCommand creates a missing-parts command with the reason.
func NewMarkMissingPartsCommand(orderID int64, reason string) (MarkMissingPartsCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return MarkMissingPartsCommand{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return MarkMissingPartsCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return MarkMissingPartsCommand{
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkMissingPartsCommand) Validate() error {
	return c.guard.Validate(ErrMarkMissingPartsCommandIsNotConstructed)
}

// OrderID returns the blocked order.
func (c MarkMissingPartsCommand) OrderID() int64 { return c.orderID }

// Reason returns the out-of-stock reason.
func (c MarkMissingPartsCommand) Reason() string { return c.reason }
