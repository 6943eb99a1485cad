// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The external order id carries a unique index: it is the idempotency anchor
// for marketplace imports and for the exception merge engine's duplicate
// detection. The skip history is a Postgres bigint array so skips can be
// appended atomically in SQL.
type OrderDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	ExternalOrderID  string `gorm:"column:external_order_id;uniqueIndex;not null"`
	ProductTitle     string
	Condition        string
	SKU              string `gorm:"column:sku"`
	TrackingNumber   string `gorm:"index"`
	Status           string `gorm:"index"`
	TesterID         *int64 `gorm:"index"`
	PackerID         *int64 `gorm:"index"`
	ShipByDate       *time.Time
	OutOfStockReason string
	SkippedBy        pq.Int64Array `gorm:"type:bigint[]"`
	IsShipped        bool          `gorm:"index"`
	Quantity         int
	Notes            string
	AccountSource    string
	CreatedAt        time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var testerID, packerID *int64
	if id := aggregate.TesterID(); id != nil {
		raw := id.Int64()
		testerID = &raw
	}
	if id := aggregate.PackerID(); id != nil {
		raw := id.Int64()
		packerID = &raw
	}

	skippedBy := make(pq.Int64Array, 0, len(aggregate.SkippedBy()))
	for _, staffID := range aggregate.SkippedBy() {
		skippedBy = append(skippedBy, staffID.Int64())
	}

	return OrderDTO{
		ID:               aggregate.ID(),
		ExternalOrderID:  aggregate.ExternalOrderID(),
		ProductTitle:     aggregate.ProductTitle(),
		Condition:        aggregate.Condition(),
		SKU:              aggregate.SKU(),
		TrackingNumber:   aggregate.TrackingNumber(),
		Status:           aggregate.Status().String(),
		TesterID:         testerID,
		PackerID:         packerID,
		ShipByDate:       aggregate.ShipByDate(),
		OutOfStockReason: aggregate.OutOfStockReason(),
		SkippedBy:        skippedBy,
		IsShipped:        aggregate.IsShipped(),
		Quantity:         aggregate.Quantity(),
		Notes:            aggregate.Notes(),
		AccountSource:    aggregate.AccountSource(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to an order aggregate. Invalid status
// tokens are healed during restore rather than rejected, so rows written
// before the normalization pass still load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	testerID, err := optionalStaffID(dto.TesterID)
	if err != nil {
		return nil, err
	}
	packerID, err := optionalStaffID(dto.PackerID)
	if err != nil {
		return nil, err
	}

	skippedBy := make([]kernel.StaffID, 0, len(dto.SkippedBy))
	for _, raw := range dto.SkippedBy {
		staffID, idErr := kernel.NewStaffID(raw)
		if idErr != nil {
			return nil, idErr
		}
		skippedBy = append(skippedBy, staffID)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.ExternalOrderID,
		dto.ProductTitle,
		dto.Condition,
		dto.SKU,
		dto.TrackingNumber,
		dto.Status,
		testerID,
		packerID,
		dto.ShipByDate,
		dto.OutOfStockReason,
		skippedBy,
		dto.IsShipped,
		dto.Quantity,
		dto.Notes,
		dto.AccountSource,
		dto.CreatedAt,
	)
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
