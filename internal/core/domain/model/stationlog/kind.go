package stationlog

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Kind identifies the physical workflow stage that recorded a scan event.
// The single station-log table is parameterized by Kind plus an operator id,
// replacing the per-technician and per-packer tables the system grew
// historically.
type Kind string

const (
	// Receiving is the intake dock scan.
	Receiving Kind = "receiving"

	// Tech is the testing bench scan; tech entries carry serial numbers.
	Tech Kind = "tech"

	// Packer is the packing station scan; a packer entry is the system's
	// evidence that an order was boxed.
	Packer Kind = "packer"
)

func validKinds() map[Kind]struct{} {
	return map[Kind]struct{}{
		Receiving: {},
		Tech:      {},
		Packer:    {},
	}
}

// Validate checks that the kind names a known station.
func (k Kind) Validate() error {
	if _, ok := validKinds()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stationKind",
			fmt.Errorf("%q is not a known station", string(k)))
	}
	return nil
}

// String returns the persisted token for the kind.
func (k Kind) String() string {
	return string(k)
}
