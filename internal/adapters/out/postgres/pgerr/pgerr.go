// Package pgerr classifies storage-layer failures into the error taxonomy
// the application reports to callers. Timeouts and lost connections become
// retryable StoreUnavailable errors carrying the failing operation name;
// anything else passes through for the transport layer to map.
package pgerr

import (
	"context"
	"errors"
	"net"

	"fulfillment/internal/pkg/errs"
)

// Classify wraps transient storage failures as StoreUnavailable, tagged with
// the operation so logs can reproduce the call. Nil and non-transient errors
// are returned unchanged.
func Classify(operation string, err error) error {
	if err == nil {
		return nil
	}

	if isUnavailable(err) {
		return errs.NewStoreUnavailableError(operation, err)
	}

	return err
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}
