package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stationlog"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordScanCommandIsNotConstructed = errors.New(
	"RecordScanCommand must be created via NewRecordScanCommand constructor",
)

// RecordScanCommand appends a scan event at a warehouse station. The raw
// tracking string is kept as scanned; the matching key is derived from it at
// query time, so later normalizer fixes apply retroactively.
type RecordScanCommand struct { //nolint:recvcheck //using for validation
	kind        stationlog.Kind
	rawTracking string
	serial      string
	serialType  string
	operatorID  kernel.StaffID

	guard guard.ConstructorGuard
}

// NewRecordScanCommand creates a scan command. The event time is stamped at
// record time by the aggregate.
func NewRecordScanCommand(
	kind stationlog.Kind,
	rawTracking, serial, serialType string,
	operatorID kernel.StaffID,
) (RecordScanCommand, error) {
	err := errors.Join(
		kind.Validate(),
		operatorID.Validate(),
	)
	if err != nil {
		return RecordScanCommand{}, err
	}

	return RecordScanCommand{
		kind:        kind,
		rawTracking: rawTracking,
		serial:      serial,
		serialType:  serialType,
		operatorID:  operatorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordScanCommand) Validate() error {
	return c.guard.Validate(ErrRecordScanCommandIsNotConstructed)
}

// Kind returns the scanning station.
func (c RecordScanCommand) Kind() stationlog.Kind { return c.kind }

// RawTracking returns the tracking string exactly as scanned.
func (c RecordScanCommand) RawTracking() string { return c.rawTracking }

// Serial returns the scanned serial number, if any.
func (c RecordScanCommand) Serial() string { return c.serial }

// SerialType returns the serial classification label, if any.
func (c RecordScanCommand) SerialType() string { return c.serialType }

// OperatorID returns the scanning staff member.
func (c RecordScanCommand) OperatorID() kernel.StaffID { return c.operatorID }
