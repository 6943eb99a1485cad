// Package exception models staged order-like records that failed validation
// or arrived through an alternate ingestion path and are quarantined until
// the merge engine folds them into the canonical orders table.
package exception

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// RowStatus is the staging state of an exception row.
type RowStatus string

const (
	// Open rows are awaiting a match against the orders table.
	Open RowStatus = "open"

	// Merged rows were folded into an order; kept only transiently before
	// deletion.
	Merged RowStatus = "merged"
)

// Row is a quarantined order-like record. It is structurally close to an
// order but carries provenance: which station surfaced it and why.
//
// Rows are created by an external ingestion step, consumed by the merge
// engine, and deleted explicitly. They are plain data; the merge rules live
// with the Order aggregate (Order.FillFrom) and the merge engine.
type Row struct {
	ID              int64
	TrackingNumber  string
	SourceStation   string
	StaffID         *kernel.StaffID
	StaffName       string
	Reason          string
	Notes           string
	Status          RowStatus
	ExternalOrderID string
	ProductTitle    string
	Condition       string
	SKU             string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TrackingKey returns the comparison key for the row's tracking number.
func (r *Row) TrackingKey() kernel.TrackingKey {
	return kernel.NewTrackingKey(r.TrackingNumber)
}

// IsOpen reports whether the row still awaits a merge.
func (r *Row) IsOpen() bool {
	return r.Status == Open
}
