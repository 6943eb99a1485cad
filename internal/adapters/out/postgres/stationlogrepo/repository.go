package stationlogrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stationlog"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	last8Expr       = `RIGHT(regexp_replace(COALESCE(tracking_number, ''), '\D', '', 'g'), 8)`
	canonical18Expr = `RIGHT(regexp_replace(UPPER(COALESCE(tracking_number, '')), '[^A-Z0-9]', '', 'g'), 18)`
)

// GormStationLogRepository implements StationLogRepository using GORM.
//
// DeleteEntry is scoped to a single row id and reports rows affected rather
// than failing on a missing row; the undo flow builds its race handling on
// that contract.
type GormStationLogRepository struct {
	db *gorm.DB
}

// NewGormStationLogRepository creates a new GORM station log repository.
func NewGormStationLogRepository(db *gorm.DB) *GormStationLogRepository {
	return &GormStationLogRepository{db: db}
}

// Record appends a scan event and writes the generated id back.
func (r *GormStationLogRepository) Record(ctx context.Context, entry *stationlog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("station_log.record", err)
	}

	entry.AssignID(dto.ID)
	return nil
}

// FindUnconsumedByTrackingSuffix returns entries of the given kind sharing
// the key's last-8 projection that have not been linked forward yet.
func (r *GormStationLogRepository) FindUnconsumedByTrackingSuffix(
	ctx context.Context, kind stationlog.Kind, key kernel.TrackingKey,
) ([]*stationlog.Entry, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if key.IsZero() {
		return nil, errs.NewValueIsRequiredError("trackingKey")
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("kind = ? AND consumed = false", kind.String()).
		Where(last8Expr+" = ?", key.Last8()).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Classify("station_log.find_unconsumed", err)
	}

	return toDomainSlice(dtos)
}

// FindTechByTracking returns tech entries carrying a serial for the key,
// newest first, optionally restricted to one operator.
func (r *GormStationLogRepository) FindTechByTracking(
	ctx context.Context, key kernel.TrackingKey, operatorID *kernel.StaffID,
) ([]*stationlog.Entry, error) {
	if key.IsZero() {
		return nil, errs.NewValueIsRequiredError("trackingKey")
	}

	query := r.db.WithContext(ctx).
		Where("kind = ? AND serial_number != ''", stationlog.Tech.String()).
		Where(last8Expr+" = ?", key.Last8())
	if operatorID != nil {
		query = query.Where("operator_id = ?", operatorID.Int64())
	}

	var dtos []EntryDTO
	if err := query.Order("event_time DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, pgerr.Classify("station_log.find_tech", err)
	}

	return toDomainSlice(dtos)
}

// MarkConsumed raises the entry's downstream link marker.
func (r *GormStationLogRepository) MarkConsumed(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Model(&EntryDTO{}).
		Where("id = ?", id).
		Update("consumed", true)
	if result.Error != nil {
		return pgerr.Classify("station_log.mark_consumed", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("entry", id)
	}

	return nil
}

// DeleteEntry removes exactly the entry with the given id. Returns false
// when the row was already gone.
func (r *GormStationLogRepository) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&EntryDTO{}, "id = ?", id)
	if result.Error != nil {
		return false, pgerr.Classify("station_log.delete_entry", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// DeleteTechByTracking bulk-removes every tech entry matching the key and
// returns the count. Deliberately broader than DeleteEntry; the two must
// never be conflated.
func (r *GormStationLogRepository) DeleteTechByTracking(
	ctx context.Context, key kernel.TrackingKey,
) (int64, error) {
	if key.IsZero() {
		return 0, errs.NewValueIsRequiredError("trackingKey")
	}

	result := r.db.WithContext(ctx).
		Where("kind = ?", stationlog.Tech.String()).
		Where(last8Expr+" = ?", key.Last8()).
		Delete(&EntryDTO{})
	if result.Error != nil {
		return 0, pgerr.Classify("station_log.delete_tech_by_tracking", result.Error)
	}

	return result.RowsAffected, nil
}

// ListTechSerials returns the serials recorded for the key, oldest first, so
// the tech screen renders scan history in the order it happened.
func (r *GormStationLogRepository) ListTechSerials(
	ctx context.Context, key kernel.TrackingKey,
) ([]string, error) {
	if key.IsZero() {
		return nil, errs.NewValueIsRequiredError("trackingKey")
	}

	serials := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&EntryDTO{}).
		Select("serial_number").
		Where("kind = ? AND serial_number != ''", stationlog.Tech.String()).
		Where(last8Expr+" = ?", key.Last8()).
		Order("event_time ASC, id ASC").
		Scan(&serials).Error
	if err != nil {
		return nil, pgerr.Classify("station_log.list_tech_serials", err)
	}

	return serials, nil
}

// HasPackEvent reports whether any packer entry matches the key's capped
// canonical projection. Used by the merge engine as shipping evidence.
func (r *GormStationLogRepository) HasPackEvent(
	ctx context.Context, key kernel.TrackingKey,
) (bool, error) {
	if key.IsZero() {
		return false, errs.NewValueIsRequiredError("trackingKey")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&EntryDTO{}).
		Where("kind = ?", stationlog.Packer.String()).
		Where(canonical18Expr+" = ?", key.Canonical18()).
		Count(&count).Error
	if err != nil {
		return false, pgerr.Classify("station_log.has_pack_event", err)
	}

	return count > 0, nil
}

func toDomainSlice(dtos []EntryDTO) ([]*stationlog.Entry, error) {
	entries := make([]*stationlog.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
