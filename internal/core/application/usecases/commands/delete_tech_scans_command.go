package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteTechScansCommandIsNotConstructed = errors.New(
	"DeleteTechScansCommand must be created via NewDeleteTechScansCommand constructor",
)

// DeleteTechScansCommand removes every tech scan matching a tracking key.
// This is the bulk reset for a unit whose whole scan history is wrong, and
// is deliberately a separate command from the single-entry undo.
type DeleteTechScansCommand struct { //nolint:recvcheck //using for validation
	trackingKey kernel.TrackingKey

	guard guard.ConstructorGuard
}

// NewDeleteTechScansCommand creates a bulk tech scan delete command.
func NewDeleteTechScansCommand(rawTracking string) (DeleteTechScansCommand, error) {
	key := kernel.NewTrackingKey(rawTracking)
	if key.IsZero() {
		return DeleteTechScansCommand{}, errs.NewValueIsRequiredError("tracking")
	}

	return DeleteTechScansCommand{
		trackingKey: key,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTechScansCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTechScansCommandIsNotConstructed)
}

// TrackingKey returns the normalized tracking key.
func (c DeleteTechScansCommand) TrackingKey() kernel.TrackingKey { return c.trackingKey }
