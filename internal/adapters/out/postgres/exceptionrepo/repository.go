package exceptionrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/exception"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormExceptionRepository implements ExceptionRepository using GORM.
type GormExceptionRepository struct {
	db *gorm.DB
}

// NewGormExceptionRepository creates a new GORM exception repository.
func NewGormExceptionRepository(db *gorm.DB) *GormExceptionRepository {
	return &GormExceptionRepository{db: db}
}

// Add stages a new exception row and writes the generated id back.
func (r *GormExceptionRepository) Add(ctx context.Context, row *exception.Row) error {
	if row == nil {
		return errs.NewValueIsRequiredError("row")
	}

	dto := fromDomain(row)
	if dto.Status == "" {
		dto.Status = string(exception.Open)
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("exceptions.add", err)
	}

	row.ID = dto.ID
	return nil
}

// ListOpen returns all open rows, oldest first, so repeated merge runs
// process them in a stable order.
func (r *GormExceptionRepository) ListOpen(ctx context.Context) ([]*exception.Row, error) {
	var dtos []RowDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", string(exception.Open)).
		Order("id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Classify("exceptions.list_open", err)
	}

	rows := make([]*exception.Row, 0, len(dtos))
	for _, dto := range dtos {
		row, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Delete removes a row after it has been merged or explicitly discarded.
func (r *GormExceptionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&RowDTO{}, "id = ?", id)
	if result.Error != nil {
		return pgerr.Classify("exceptions.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("exception", id)
	}

	return nil
}
