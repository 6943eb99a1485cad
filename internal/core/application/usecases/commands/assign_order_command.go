package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand applies a partial assignment update to one or more
// orders: tester, packer, ship-by deadline, out-of-stock reason, in any
// combination. The same patch is applied to every listed order. Fields
// absent from the patch are never touched, so two supervisors editing
// different fields of the same order do not clobber each other.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderIDs []int64
	patch    ports.AssignmentPatch

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates an assignment command from the given patch.
// An empty patch is rejected; use the dedicated commands for skip and
// missing-parts flows.
func NewAssignOrderCommand(orderIDs []int64, patch ports.AssignmentPatch) (AssignOrderCommand, error) {
	if len(orderIDs) == 0 {
		return AssignOrderCommand{}, errs.NewValueIsRequiredError("orderIDs")
	}
	for _, orderID := range orderIDs {
		if err := validateOrderID(orderID); err != nil {
			return AssignOrderCommand{}, err
		}
	}
	if patch.Empty() {
		return AssignOrderCommand{}, errs.NewValueIsRequiredError("patch")
	}
	if patch.SetTester && patch.TesterID != nil {
		if err := patch.TesterID.Validate(); err != nil {
			return AssignOrderCommand{}, err
		}
	}
	if patch.SetPacker && patch.PackerID != nil {
		if err := patch.PackerID.Validate(); err != nil {
			return AssignOrderCommand{}, err
		}
	}

	return AssignOrderCommand{
		orderIDs: orderIDs,
		patch:    patch,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderIDs returns the orders being updated.
func (c AssignOrderCommand) OrderIDs() []int64 { return c.orderIDs }

// Patch returns the partial assignment update.
func (c AssignOrderCommand) Patch() ports.AssignmentPatch { return c.patch }

// TesterPatch is a convenience constructor for a tester-only patch.
func TesterPatch(testerID *kernel.StaffID) ports.AssignmentPatch {
	return ports.AssignmentPatch{TesterID: testerID, SetTester: true}
}

// PackerPatch is a convenience constructor for a packer-only patch.
func PackerPatch(packerID *kernel.StaffID) ports.AssignmentPatch {
	return ports.AssignmentPatch{PackerID: packerID, SetPacker: true}
}

// ShipByPatch is a convenience constructor for a ship-by-only patch.
func ShipByPatch(date *time.Time) ports.AssignmentPatch {
	return ports.AssignmentPatch{ShipByDate: date, SetShipBy: true}
}
