package stationlog

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable scan event recorded at a station. Entries are
// append-only: corrections happen by deleting the most recent entry through
// the explicit undo operation, never by mutating history.
//
// An entry relates to an order only by best-effort tracking key comparison.
// The same tracking key may legitimately appear under multiple kinds as the
// unit moves through the pipeline.
type Entry struct {
	id           int64
	kind         Kind
	rawTracking  string
	trackingKey  kernel.TrackingKey
	serialNumber string
	serialType   string
	operatorID   kernel.StaffID
	eventTime    time.Time
	consumed     bool

	isConstructed bool
}

// NewEntry creates a scan event for a station. The tracking key is derived
// once at construction and stored alongside the raw scan.
func NewEntry(kind Kind, rawTracking string, serialNumber, serialType string, operatorID kernel.StaffID) (*Entry, error) {
	key := kernel.NewTrackingKey(rawTracking)

	if err := errors.Join(
		kind.Validate(),
		operatorID.Validate(),
	); err != nil {
		return nil, err
	}
	if key.IsZero() {
		return nil, errs.NewValueIsRequiredError("tracking")
	}

	return &Entry{
		kind:          kind,
		rawTracking:   key.Raw(),
		trackingKey:   key,
		serialNumber:  serialNumber,
		serialType:    serialType,
		operatorID:    operatorID,
		eventTime:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(
	id int64,
	kind Kind,
	rawTracking, serialNumber, serialType string,
	operatorID kernel.StaffID,
	eventTime time.Time,
	consumed bool,
) (*Entry, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		kind:          kind,
		rawTracking:   rawTracking,
		trackingKey:   kernel.NewTrackingKey(rawTracking),
		serialNumber:  serialNumber,
		serialType:    serialType,
		operatorID:    operatorID,
		eventTime:     eventTime,
		consumed:      consumed,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was constructed through NewEntry or RestoreEntry.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the internal surrogate identifier; zero until persisted.
func (e *Entry) ID() int64 { return e.id }

// AssignID records the database-generated identifier after the first insert.
// A non-zero id is never replaced.
func (e *Entry) AssignID(id int64) {
	if e.id == 0 {
		e.id = id
	}
}

// Kind returns the recording station.
func (e *Entry) Kind() Kind { return e.kind }

// RawTracking returns the tracking string exactly as scanned (trimmed).
func (e *Entry) RawTracking() string { return e.rawTracking }

// TrackingKey returns the derived comparison key.
func (e *Entry) TrackingKey() kernel.TrackingKey { return e.trackingKey }

// SerialNumber returns the scanned serial, empty for non-tech stations.
func (e *Entry) SerialNumber() string { return e.serialNumber }

// SerialType returns the serial classification label, if any.
func (e *Entry) SerialType() string { return e.serialType }

// OperatorID returns the staff member who recorded the scan.
func (e *Entry) OperatorID() kernel.StaffID { return e.operatorID }

// EventTime returns when the scan happened.
func (e *Entry) EventTime() time.Time { return e.eventTime }

// Consumed reports whether a downstream step already linked this entry
// forward. Consumed entries are excluded from new matches.
func (e *Entry) Consumed() bool { return e.consumed }

// MarkConsumed flags the entry as linked forward.
func (e *Entry) MarkConsumed() { e.consumed = true }
