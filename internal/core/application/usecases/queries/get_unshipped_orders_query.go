package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetUnshippedOrdersQueryIsNotConstructed = errors.New(
	"GetUnshippedOrdersQuery must be created via NewGetUnshippedOrdersQuery constructor",
)

// GetUnshippedOrdersQuery retrieves the active workload: every order not yet
// handed to the carrier, for the assignment board and the floor dashboards.
//
// Example:
//
//	query := NewGetUnshippedOrdersQuery()
//	handler := NewGetUnshippedOrdersQueryHandler(db)
//
//	open, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load open orders: %w", err)
//	}
//	fmt.Printf("%d orders on the floor\n", len(open))
type GetUnshippedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnshippedOrdersQuery creates a query for all unshipped orders.
// This is a parameterless query; filtering happens client-side.
func NewGetUnshippedOrdersQuery() GetUnshippedOrdersQuery {
	return GetUnshippedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnshippedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnshippedOrdersQueryIsNotConstructed)
}

// GetUnshippedOrdersQueryResponse is one row of the assignment board.
type GetUnshippedOrdersQueryResponse struct {
	ID               int64
	ExternalOrderID  string
	ProductTitle     string
	Condition        string
	SKU              string
	Tracking         string
	Status           order.Status
	TesterID         *kernel.StaffID
	PackerID         *kernel.StaffID
	ShipByDate       *time.Time
	OutOfStockReason string
	SkippedBy        []kernel.StaffID
	Quantity         int
	CreatedAt        time.Time
}
