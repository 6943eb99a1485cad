package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrSyncExceptionsCommandIsNotConstructed = errors.New(
	"SyncExceptionsCommand must be created via NewSyncExceptionsCommand constructor",
)

// SyncExceptionsCommand folds staged exception rows into the orders table.
// It carries no parameters; the scan always covers every open row.
type SyncExceptionsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewSyncExceptionsCommand creates an exception sync command.
func NewSyncExceptionsCommand() (SyncExceptionsCommand, error) {
	return SyncExceptionsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncExceptionsCommand) Validate() error {
	return c.guard.Validate(ErrSyncExceptionsCommandIsNotConstructed)
}
