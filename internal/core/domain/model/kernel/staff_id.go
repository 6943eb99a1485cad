package kernel

import "fulfillment/internal/pkg/errs"

// StaffID identifies a technician or packer. Staff records live outside this
// core; the id is carried through assignments and station log entries as an
// opaque positive integer.
type StaffID int64

// NewStaffID validates and wraps a raw staff identifier.
func NewStaffID(id int64) (StaffID, error) {
	staffID := StaffID(id)
	if err := staffID.Validate(); err != nil {
		return 0, err
	}
	return staffID, nil
}

// Validate checks that the id is positive. Zero is the "unassigned" marker in
// transport payloads and is never a valid StaffID.
func (s StaffID) Validate() error {
	if s <= 0 {
		return errs.NewValueIsInvalidError("staffId")
	}
	return nil
}

// Int64 returns the raw identifier.
func (s StaffID) Int64() int64 {
	return int64(s)
}
