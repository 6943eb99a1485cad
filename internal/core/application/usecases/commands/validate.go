package commands

import "fulfillment/internal/pkg/errs"

func validateOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}
	return nil
}
