package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrNormalizeStatusesCommandIsNotConstructed = errors.New(
	"NormalizeStatusesCommand must be created via NewNormalizeStatusesCommand constructor",
)

// NormalizeStatusesCommand rewrites known-bad status tokens to canonical
// form. A scanning-station integration once wrote "uassigned" instead of
// "unassigned"; the pass repairs any such rows and is a no-op otherwise.
type NormalizeStatusesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewNormalizeStatusesCommand creates a status healing command.
func NewNormalizeStatusesCommand() (NormalizeStatusesCommand, error) {
	return NormalizeStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c NormalizeStatusesCommand) Validate() error {
	return c.guard.Validate(ErrNormalizeStatusesCommandIsNotConstructed)
}
