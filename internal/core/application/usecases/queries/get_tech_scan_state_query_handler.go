package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stationlog"

	"gorm.io/gorm"
)

// GetTechScanStateQueryHandler assembles the tech bench view in two reads:
// the order matched by last-8 key, then the tech scan history for the same
// key, oldest first.
type GetTechScanStateQueryHandler struct {
	db *gorm.DB
}

// NewGetTechScanStateQueryHandler creates a handler for tech bench lookups.
// Requires a GORM database connection for query execution.
func NewGetTechScanStateQueryHandler(db *gorm.DB) GetTechScanStateQueryHandler {
	return GetTechScanStateQueryHandler{db: db}
}

// Handle resolves the scanned label. An unknown label returns Found=false
// with a nil error.
func (h GetTechScanStateQueryHandler) Handle(
	ctx context.Context,
	query GetTechScanStateQuery,
) (GetTechScanStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTechScanStateQueryResponse{}, err
	}

	last8 := query.TrackingKey().Last8()

	var resp GetTechScanStateQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_order_id,
			product_title,
			sku,
			condition,
			notes,
			tracking_number,
			account_source,
			quantity
		FROM orders
		WHERE tracking_number IS NOT NULL
		  AND tracking_number != ''
		  AND RIGHT(regexp_replace(tracking_number, '\D', '', 'g'), 8) = ?
		ORDER BY id DESC
		LIMIT 1
	`, last8).Row()

	err := row.Scan(
		&resp.OrderID,
		&resp.ExternalOrderID,
		&resp.ProductTitle,
		&resp.SKU,
		&resp.Condition,
		&resp.Notes,
		&resp.Tracking,
		&resp.AccountSource,
		&resp.Quantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetTechScanStateQueryResponse{Found: false}, nil
		}
		return GetTechScanStateQueryResponse{}, err
	}
	resp.Found = true

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT serial_number, operator_id, event_time
		FROM station_log_entries
		WHERE kind = ?
		  AND serial_number != ''
		  AND RIGHT(regexp_replace(tracking_number, '\D', '', 'g'), 8) = ?
		ORDER BY event_time ASC, id ASC
	`, stationlog.Tech, last8).Rows()
	if err != nil {
		return GetTechScanStateQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var serial string
		var operatorID int64
		var eventTime time.Time
		if err = rows.Scan(&serial, &operatorID, &eventTime); err != nil {
			return GetTechScanStateQueryResponse{}, err
		}

		if len(resp.SerialNumbers) == 0 {
			staffID, idErr := kernel.NewStaffID(operatorID)
			if idErr != nil {
				return GetTechScanStateQueryResponse{}, idErr
			}
			at := eventTime
			resp.FirstTestedAt = &at
			resp.FirstTestedBy = &staffID
		}
		resp.SerialNumbers = append(resp.SerialNumbers, serial)
	}
	if err = rows.Err(); err != nil {
		return GetTechScanStateQueryResponse{}, err
	}

	return resp, nil
}
