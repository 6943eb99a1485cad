package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetUnshippedOrdersQueryHandler loads the active workload, oldest ship-by
// deadline first so the board surfaces what must leave the building today.
type GetUnshippedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnshippedOrdersQueryHandler creates a handler for workload queries.
// Requires a GORM database connection for query execution.
func NewGetUnshippedOrdersQueryHandler(db *gorm.DB) GetUnshippedOrdersQueryHandler {
	return GetUnshippedOrdersQueryHandler{db: db}
}

// Handle executes the query. Status tokens are normalized on the way out so
// a not-yet-healed row still renders correctly.
func (h GetUnshippedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnshippedOrdersQuery,
) ([]GetUnshippedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results := make([]GetUnshippedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_order_id,
			product_title,
			condition,
			sku,
			tracking_number,
			status,
			tester_id,
			packer_id,
			ship_by_date,
			out_of_stock_reason,
			skipped_by,
			quantity,
			created_at
		FROM orders
		WHERE is_shipped = false
		ORDER BY ship_by_date ASC NULLS LAST, id ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnshippedOrdersQueryResponse
		var statusToken string
		var testerID, packerID *int64
		var skippedBy pq.Int64Array

		err = rows.Scan(
			&resp.ID,
			&resp.ExternalOrderID,
			&resp.ProductTitle,
			&resp.Condition,
			&resp.SKU,
			&resp.Tracking,
			&statusToken,
			&testerID,
			&packerID,
			&resp.ShipByDate,
			&resp.OutOfStockReason,
			&skippedBy,
			&resp.Quantity,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		status, statusErr := order.NormalizeToken(statusToken)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = status

		if resp.TesterID, err = optionalStaffID(testerID); err != nil {
			return nil, err
		}
		if resp.PackerID, err = optionalStaffID(packerID); err != nil {
			return nil, err
		}
		for _, raw := range skippedBy {
			staffID, idErr := kernel.NewStaffID(raw)
			if idErr != nil {
				return nil, idErr
			}
			resp.SkippedBy = append(resp.SkippedBy, staffID)
		}

		results = append(results, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func optionalStaffID(raw *int64) (*kernel.StaffID, error) {
	if raw == nil {
		return nil, nil
	}
	staffID, err := kernel.NewStaffID(*raw)
	if err != nil {
		return nil, err
	}
	return &staffID, nil
}
