package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/stationlog"

	"gorm.io/gorm"
)

// VerifyOrderByTrackingQueryHandler resolves a scanned label against the
// orders table. Matching runs entirely in SQL on the digit projection of the
// stored tracking numbers, so rows written before the normalizer existed
// still match. "Packed" is evidence-based: it means a packer scan exists for
// the same key, not that someone set a flag.
type VerifyOrderByTrackingQueryHandler struct {
	db *gorm.DB
}

// NewVerifyOrderByTrackingQueryHandler creates a handler for label
// verification. Requires a GORM database connection for query execution.
func NewVerifyOrderByTrackingQueryHandler(db *gorm.DB) VerifyOrderByTrackingQueryHandler {
	return VerifyOrderByTrackingQueryHandler{db: db}
}

// Handle looks the label up. An unknown label returns Found=false with a nil
// error; "not in the system" is an answer, not a failure.
func (h VerifyOrderByTrackingQueryHandler) Handle(
	ctx context.Context,
	query VerifyOrderByTrackingQuery,
) (VerifyOrderByTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return VerifyOrderByTrackingQueryResponse{}, err
	}

	last8 := query.TrackingKey().Last8()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.external_order_id,
			o.product_title,
			o.condition,
			o.tracking_number,
			o.is_shipped,
			EXISTS (
				SELECT 1
				FROM station_log_entries e
				WHERE e.kind = ?
				  AND RIGHT(regexp_replace(e.tracking_number, '\D', '', 'g'), 8) = ?
			) AS packed
		FROM orders o
		WHERE o.tracking_number IS NOT NULL
		  AND o.tracking_number != ''
		  AND RIGHT(regexp_replace(o.tracking_number, '\D', '', 'g'), 8) = ?
		ORDER BY o.id DESC
		LIMIT 1
	`, stationlog.Packer, last8, last8).Rows()
	if err != nil {
		return VerifyOrderByTrackingQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return VerifyOrderByTrackingQueryResponse{}, err
		}
		return VerifyOrderByTrackingQueryResponse{Found: false}, nil
	}

	var resp VerifyOrderByTrackingQueryResponse
	err = rows.Scan(
		&resp.OrderID,
		&resp.ExternalOrderID,
		&resp.ProductTitle,
		&resp.Condition,
		&resp.Tracking,
		&resp.Shipped,
		&resp.Packed,
	)
	if err != nil {
		return VerifyOrderByTrackingQueryResponse{}, err
	}
	resp.Found = true

	return resp, nil
}
