// Package exceptionrepo persists staged exception rows awaiting merge into
// the orders table.
package exceptionrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/exception"
	"fulfillment/internal/core/domain/model/kernel"
)

// RowDTO represents the database structure for staged exception rows.
type RowDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	TrackingNumber  string `gorm:"index;not null"`
	SourceStation   string `gorm:"index"`
	StaffID         *int64
	StaffName       string
	Reason          string
	Notes           string
	Status          string `gorm:"index;default:open"`
	ExternalOrderID string `gorm:"column:external_order_id;index"`
	ProductTitle    string
	Condition       string
	SKU             string `gorm:"column:sku"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for exception rows.
func (RowDTO) TableName() string {
	return "orders_exceptions"
}

// fromDomain converts an exception row to its database representation.
func fromDomain(row *exception.Row) RowDTO {
	var staffID *int64
	if row.StaffID != nil {
		raw := row.StaffID.Int64()
		staffID = &raw
	}

	return RowDTO{
		ID:              row.ID,
		TrackingNumber:  row.TrackingNumber,
		SourceStation:   row.SourceStation,
		StaffID:         staffID,
		StaffName:       row.StaffName,
		Reason:          row.Reason,
		Notes:           row.Notes,
		Status:          string(row.Status),
		ExternalOrderID: row.ExternalOrderID,
		ProductTitle:    row.ProductTitle,
		Condition:       row.Condition,
		SKU:             row.SKU,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// toDomain converts a database row to an exception row.
func toDomain(dto RowDTO) (*exception.Row, error) {
	var staffID *kernel.StaffID
	if dto.StaffID != nil {
		id, err := kernel.NewStaffID(*dto.StaffID)
		if err != nil {
			return nil, err
		}
		staffID = &id
	}

	return &exception.Row{
		ID:              dto.ID,
		TrackingNumber:  dto.TrackingNumber,
		SourceStation:   dto.SourceStation,
		StaffID:         staffID,
		StaffName:       dto.StaffName,
		Reason:          dto.Reason,
		Notes:           dto.Notes,
		Status:          exception.RowStatus(dto.Status),
		ExternalOrderID: dto.ExternalOrderID,
		ProductTitle:    dto.ProductTitle,
		Condition:       dto.Condition,
		SKU:             dto.SKU,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}, nil
}
