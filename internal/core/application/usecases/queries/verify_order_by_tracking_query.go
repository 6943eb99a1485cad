// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries go straight to SQL and return read models shaped for one caller.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrVerifyOrderByTrackingQueryIsNotConstructed = errors.New(
	"VerifyOrderByTrackingQuery must be created via NewVerifyOrderByTrackingQuery constructor",
)

// VerifyOrderByTrackingQuery answers the label printer verification screen:
// does this physical tracking number belong to a known order, and has the
// order been packed or shipped yet? The match runs on the last-8 key so a
// carrier label and a marketplace export with different decoration still
// find each other.
//
// Example:
//
//	query, err := NewVerifyOrderByTrackingQuery("1Z999AA10123456784")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !result.Found {
//	    // unknown label, stage an exception
//	}
type VerifyOrderByTrackingQuery struct {
	trackingKey kernel.TrackingKey

	guard guard.ConstructorGuard
}

// NewVerifyOrderByTrackingQuery creates a verification query for the raw
// tracking string as scanned.
func NewVerifyOrderByTrackingQuery(rawTracking string) (VerifyOrderByTrackingQuery, error) {
	key := kernel.NewTrackingKey(rawTracking)
	if key.IsZero() {
		return VerifyOrderByTrackingQuery{}, errs.NewValueIsRequiredError("tracking")
	}

	return VerifyOrderByTrackingQuery{
		trackingKey: key,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q VerifyOrderByTrackingQuery) Validate() error {
	return q.guard.Validate(ErrVerifyOrderByTrackingQueryIsNotConstructed)
}

// TrackingKey returns the normalized tracking key.
func (q VerifyOrderByTrackingQuery) TrackingKey() kernel.TrackingKey { return q.trackingKey }

// VerifyOrderByTrackingQueryResponse is the verification read model. Found
// distinguishes "unknown label" from "known but not packed yet"; callers
// branch on it before looking at the rest.
type VerifyOrderByTrackingQueryResponse struct {
	Found           bool
	OrderID         int64
	ExternalOrderID string
	ProductTitle    string
	Condition       string
	Tracking        string
	Packed          bool
	Shipped         bool
}
