package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a fulfillment order.
//
// The status is authoritative but redundant: it is always re-derivable from
// the assignment and shipment facts via InferStatus, and persisted for query
// performance. The persisted column can lag behind the facts (historically it
// was inferred ad hoc from nullable columns, which produced data-entry
// artifacts like the "uassigned" token); NormalizeToken heals known-invalid
// values idempotently.
//
// Lifecycle:
//
//	unassigned ──> assigned ──> tested ──> packed ──> shipped
//	                  │ ▲
//	                  ▼ │
//	            missing_parts
//
// Skips do not change the status; they only grow the order's skip history.
type Status string

const (
	// Unassigned is the intake state: no tester or packer has the order.
	Unassigned Status = "unassigned"

	// Assigned means a tester or packer has claimed the order.
	Assigned Status = "assigned"

	// MissingParts marks an order blocked on stock; the out-of-stock reason
	// carries the detail. Assignment is preserved while blocked.
	MissingParts Status = "missing_parts"

	// Tested means at least one serial has been recorded at the tech station.
	Tested Status = "tested"

	// Packed means a pack event exists for the order's tracking number.
	Packed Status = "packed"

	// Shipped is the final state, entered only by the shipping submission
	// step. It is never reverted.
	Shipped Status = "shipped"
)

// legacyUnassignedToken is a data-entry typo observed in production rows.
// NormalizeToken rewrites it to Unassigned; nothing else ever writes it.
const legacyUnassignedToken = "uassigned"

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Unassigned:   {},
		Assigned:     {},
		MissingParts: {},
		Tested:       {},
		Packed:       {},
		Shipped:      {},
	}
}

// Validate checks that the status is one of the canonical tokens.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the persisted token for the status.
func (s Status) String() string {
	return string(s)
}

// NormalizeToken maps a raw stored status token to its canonical form.
// Known-invalid tokens are rewritten; valid tokens pass through unchanged;
// anything else is reported as invalid. The mapping is idempotent.
func NormalizeToken(raw string) (Status, error) {
	if raw == legacyUnassignedToken {
		return Unassigned, nil
	}

	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// InvalidTokens returns the known-invalid status tokens that the
// normalization pass rewrites. Exposed so the storage layer can target
// exactly these rows.
func InvalidTokens() map[string]Status {
	return map[string]Status{
		legacyUnassignedToken: Unassigned,
	}
}

// StatusFacts are the assignment and shipment facts a status is derived from.
// Pack and test evidence comes from the station logs and is supplied by the
// caller; the rest lives on the order row itself.
type StatusFacts struct {
	TesterAssigned bool
	PackerAssigned bool
	OutOfStock     bool
	TestEvent      bool
	PackEvent      bool
	Shipped        bool
}

// InferStatus derives the authoritative status from the facts. It is pure and
// deterministic; persisting its result is an optimization, never a source of
// truth. Later pipeline stages dominate earlier ones.
func InferStatus(f StatusFacts) Status {
	switch {
	case f.Shipped:
		return Shipped
	case f.PackEvent:
		return Packed
	case f.TestEvent:
		return Tested
	case f.OutOfStock:
		return MissingParts
	case f.TesterAssigned || f.PackerAssigned:
		return Assigned
	default:
		return Unassigned
	}
}
