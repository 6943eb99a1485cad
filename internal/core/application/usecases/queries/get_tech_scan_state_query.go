package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetTechScanStateQueryIsNotConstructed = errors.New(
	"GetTechScanStateQuery must be created via NewGetTechScanStateQuery constructor",
)

// GetTechScanStateQuery drives the tech bench screen: scan a label, get the
// order's product details and every serial already recorded against it, so
// the tech sees immediately whether a unit was tested before and by whom.
type GetTechScanStateQuery struct {
	trackingKey kernel.TrackingKey

	guard guard.ConstructorGuard
}

// NewGetTechScanStateQuery creates a tech bench lookup for the raw tracking
// string as scanned.
func NewGetTechScanStateQuery(rawTracking string) (GetTechScanStateQuery, error) {
	key := kernel.NewTrackingKey(rawTracking)
	if key.IsZero() {
		return GetTechScanStateQuery{}, errs.NewValueIsRequiredError("tracking")
	}

	return GetTechScanStateQuery{
		trackingKey: key,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTechScanStateQuery) Validate() error {
	return q.guard.Validate(ErrGetTechScanStateQueryIsNotConstructed)
}

// TrackingKey returns the normalized tracking key.
func (q GetTechScanStateQuery) TrackingKey() kernel.TrackingKey { return q.trackingKey }

// GetTechScanStateQueryResponse is the tech bench read model. Serials are
// oldest first; FirstTestedAt and FirstTestedBy describe the earliest scan
// and are zero-valued when no serial was recorded yet.
type GetTechScanStateQueryResponse struct {
	Found           bool
	OrderID         int64
	ExternalOrderID string
	ProductTitle    string
	SKU             string
	Condition       string
	Notes           string
	Tracking        string
	AccountSource   string
	Quantity        int
	SerialNumbers   []string
	FirstTestedAt   *time.Time
	FirstTestedBy   *kernel.StaffID
}
