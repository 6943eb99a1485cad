// Package stationlogrepo persists scan events from the warehouse stations.
// All stations share one table parameterized by kind; the recording station
// is a column, not a schema decision, so adding a station never means adding
// a table.
package stationlogrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stationlog"
)

// EntryDTO represents the database structure for persisting scan events.
// The raw tracking string is stored as scanned; matching keys are projected
// in SQL at query time.
type EntryDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Kind           string `gorm:"index;not null"`
	TrackingNumber string `gorm:"index;not null"`
	SerialNumber   string
	SerialType     string
	OperatorID     int64     `gorm:"index"`
	EventTime      time.Time `gorm:"index"`
	Consumed       bool
}

// TableName specifies the database table name for scan events.
func (EntryDTO) TableName() string {
	return "station_log_entries"
}

// fromDomain converts a scan event to its database representation.
func fromDomain(entry *stationlog.Entry) EntryDTO {
	return EntryDTO{
		ID:             entry.ID(),
		Kind:           entry.Kind().String(),
		TrackingNumber: entry.RawTracking(),
		SerialNumber:   entry.SerialNumber(),
		SerialType:     entry.SerialType(),
		OperatorID:     entry.OperatorID().Int64(),
		EventTime:      entry.EventTime(),
		Consumed:       entry.Consumed(),
	}
}

// toDomain converts a database row to a scan event entity.
func toDomain(dto EntryDTO) (*stationlog.Entry, error) {
	operatorID, err := kernel.NewStaffID(dto.OperatorID)
	if err != nil {
		return nil, err
	}

	return stationlog.RestoreEntry(
		dto.ID,
		stationlog.Kind(dto.Kind),
		dto.TrackingNumber,
		dto.SerialNumber,
		dto.SerialType,
		operatorID,
		dto.EventTime,
		dto.Consumed,
	)
}
