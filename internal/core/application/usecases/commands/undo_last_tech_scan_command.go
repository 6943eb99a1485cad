package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUndoLastTechScanCommandIsNotConstructed = errors.New(
	"UndoLastTechScanCommand must be created via NewUndoLastTechScanCommand constructor",
)

// UndoLastTechScanCommand removes the single most recent tech scan for a
// tracking key, optionally restricted to one operator's scans. This is the
// "oops, wrong serial" button; it never removes more than one entry.
type UndoLastTechScanCommand struct { //nolint:recvcheck //using for validation
	trackingKey kernel.TrackingKey
	operatorID  *kernel.StaffID

	guard guard.ConstructorGuard
}

// NewUndoLastTechScanCommand creates an undo command. A nil operator id means
// any operator's latest scan qualifies.
func NewUndoLastTechScanCommand(
	rawTracking string, operatorID *kernel.StaffID,
) (UndoLastTechScanCommand, error) {
	key := kernel.NewTrackingKey(rawTracking)
	if key.IsZero() {
		return UndoLastTechScanCommand{}, errs.NewValueIsRequiredError("tracking")
	}
	if operatorID != nil {
		if err := operatorID.Validate(); err != nil {
			return UndoLastTechScanCommand{}, err
		}
	}

	return UndoLastTechScanCommand{
		trackingKey: key,
		operatorID:  operatorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UndoLastTechScanCommand) Validate() error {
	return c.guard.Validate(ErrUndoLastTechScanCommandIsNotConstructed)
}

// TrackingKey returns the normalized tracking key.
func (c UndoLastTechScanCommand) TrackingKey() kernel.TrackingKey { return c.trackingKey }

// OperatorID returns the optional operator restriction.
func (c UndoLastTechScanCommand) OperatorID() *kernel.StaffID { return c.operatorID }
