package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// Digit and alphanumeric projections of the stored tracking number, matching
// the projections TrackingKey computes in Go. Matching is recomputed per
// query instead of stored so historical rows never need backfilling.
const (
	last8Expr       = `RIGHT(regexp_replace(COALESCE(tracking_number, ''), '\D', '', 'g'), 8)`
	canonical18Expr = `RIGHT(regexp_replace(UPPER(COALESCE(tracking_number, '')), '[^A-Z0-9]', '', 'g'), 18)`
)

// GormOrderRepository implements OrderRepository using GORM.
//
// The race-sensitive operations (ClaimTester, AppendSkip, MarkShipped) are
// single conditional statements; they never read first and write second.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and writes the generated id back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("orders.add", err)
	}

	aggregate.AssignID(dto.ID)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The skip history is
// excluded: skipped_by is append-only through AppendSkip, and a full-row
// write from a stale aggregate must not rewind it.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at", "skipped_by").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("orders.update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by its internal id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, pgerr.Classify("orders.get", err)
	}

	return toDomain(dto)
}

// GetByTrackingLast8 retrieves the order whose stored tracking number shares
// the key's last-8 digit projection. Highest internal id wins when several
// rows match, mirroring the tie-break used for station log entries.
func (r *GormOrderRepository) GetByTrackingLast8(
	ctx context.Context, key kernel.TrackingKey,
) (*order.Order, error) {
	if key.IsZero() {
		return nil, errs.NewValueIsRequiredError("trackingKey")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("tracking_number IS NOT NULL AND tracking_number != ''").
		Where(last8Expr+" = ?", key.Last8()).
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", key.Raw())
		}
		return nil, pgerr.Classify("orders.get_by_tracking", err)
	}

	return toDomain(dto)
}

// FindIDByCanonical18 returns the id of the order matching the key's capped
// canonical projection.
func (r *GormOrderRepository) FindIDByCanonical18(
	ctx context.Context, key kernel.TrackingKey,
) (int64, error) {
	if key.IsZero() {
		return 0, errs.NewValueIsRequiredError("trackingKey")
	}

	var id int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("id").
		Where("tracking_number IS NOT NULL AND tracking_number != ''").
		Where(canonical18Expr+" = ?", key.Canonical18()).
		Order("id DESC").
		Limit(1).
		Scan(&id).Error
	if err != nil {
		return 0, pgerr.Classify("orders.find_by_canonical18", err)
	}
	if id == 0 {
		return 0, errs.NewObjectNotFoundError("tracking", key.Raw())
	}

	return id, nil
}

// ExistsByExternalID reports whether an order with the external reference is
// already present.
func (r *GormOrderRepository) ExistsByExternalID(
	ctx context.Context, externalOrderID string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("external_order_id = ?", externalOrderID).
		Count(&count).Error
	if err != nil {
		return false, pgerr.Classify("orders.exists_by_external_id", err)
	}

	return count > 0, nil
}

// ClaimTester assigns the tester only if no tester holds the order. The
// WHERE clause is the whole concurrency story: of two racing claims exactly
// one matches the tester_id IS NULL predicate.
func (r *GormOrderRepository) ClaimTester(
	ctx context.Context, orderID int64, staffID kernel.StaffID,
) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET tester_id = ?,
		    status = CASE WHEN status = ? THEN ? ELSE status END
		WHERE id = ? AND tester_id IS NULL
	`, staffID.Int64(), order.Unassigned.String(), order.Assigned.String(), orderID)
	if result.Error != nil {
		return pgerr.Classify("orders.claim_tester", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", orderID).
			Count(&count).Error; err != nil {
			return pgerr.Classify("orders.claim_tester", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", orderID)
		}
		return errs.NewConflictError("testerID")
	}

	return nil
}

// AppendSkip atomically appends the staff id to the order's skip history.
// array_append runs inside the row update, so concurrent skips merge instead
// of overwriting each other.
func (r *GormOrderRepository) AppendSkip(
	ctx context.Context, orderID int64, staffID kernel.StaffID,
) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET skipped_by = array_append(COALESCE(skipped_by, '{}'), ?)
		WHERE id = ?
	`, staffID.Int64(), orderID)
	if result.Error != nil {
		return pgerr.Classify("orders.append_skip", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID)
	}

	return nil
}

// AssignFields applies a partial assignment update; only fields with their
// Set flag raised are written.
func (r *GormOrderRepository) AssignFields(
	ctx context.Context, orderID int64, patch ports.AssignmentPatch,
) error {
	if patch.Empty() {
		return errs.NewValueIsRequiredError("patch")
	}

	updates := map[string]any{}
	if patch.SetTester {
		updates["tester_id"] = staffIDValue(patch.TesterID)
	}
	if patch.SetPacker {
		updates["packer_id"] = staffIDValue(patch.PackerID)
	}
	if patch.SetShipBy {
		updates["ship_by_date"] = patch.ShipByDate
	}
	if patch.SetOutOfStock {
		reason := ""
		if patch.OutOfStockReason != nil {
			reason = *patch.OutOfStockReason
		}
		updates["out_of_stock_reason"] = reason
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", orderID).
		Updates(updates)
	if result.Error != nil {
		return pgerr.Classify("orders.assign_fields", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID)
	}

	return nil
}

// SetMissingParts records the out-of-stock reason and moves the status to
// missing_parts without touching tester or packer assignment.
func (r *GormOrderRepository) SetMissingParts(
	ctx context.Context, orderID int64, reason string,
) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET out_of_stock_reason = ?, status = ?
		WHERE id = ? AND is_shipped = false
	`, reason, order.MissingParts.String(), orderID)
	if result.Error != nil {
		return pgerr.Classify("orders.set_missing_parts", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID)
	}

	return nil
}

// MarkShipped flips the shipped flag false to true. An already-shipped row
// matches zero rows and stays untouched, which keeps the operation
// idempotent.
func (r *GormOrderRepository) MarkShipped(ctx context.Context, orderID int64) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET is_shipped = true, status = ?
		WHERE id = ? AND is_shipped = false
	`, order.Shipped.String(), orderID)
	if result.Error != nil {
		return pgerr.Classify("orders.mark_shipped", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", orderID).
			Count(&count).Error; err != nil {
			return pgerr.Classify("orders.mark_shipped", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", orderID)
		}
		// Already shipped; nothing to do.
	}

	return nil
}

// Delete permanently removes the given orders and reports each id's outcome.
func (r *GormOrderRepository) Delete(
	ctx context.Context, ids []int64,
) ([]ports.DeleteOutcome, error) {
	outcomes := make([]ports.DeleteOutcome, 0, len(ids))
	for _, id := range ids {
		result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
		if result.Error != nil {
			return nil, pgerr.Classify("orders.delete", result.Error)
		}
		outcomes = append(outcomes, ports.DeleteOutcome{
			ID:      id,
			Deleted: result.RowsAffected > 0,
		})
	}

	return outcomes, nil
}

// NormalizeStatuses rewrites rows holding known-invalid status tokens to
// their canonical form. The WHERE clause targets only invalid rows, so the
// pass is idempotent by construction.
func (r *GormOrderRepository) NormalizeStatuses(ctx context.Context) (int64, error) {
	var fixed int64
	for invalid, canonical := range order.InvalidTokens() {
		result := r.db.WithContext(ctx).Exec(`
			UPDATE orders
			SET status = ?
			WHERE status = ?
		`, canonical.String(), invalid)
		if result.Error != nil {
			return fixed, pgerr.Classify("orders.normalize_statuses", result.Error)
		}
		fixed += result.RowsAffected
	}

	return fixed, nil
}

func staffIDValue(id *kernel.StaffID) any {
	if id == nil {
		return nil
	}
	return id.Int64()
}
