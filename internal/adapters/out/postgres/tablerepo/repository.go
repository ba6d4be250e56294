package tablerepo

import (
	"context"
	"errors"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/table"
	"tableservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db *gorm.DB
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

// Add saves a new table to the database.
func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByNumber retrieves a table by its human-facing number.
func (r *GormTableRepository) GetByNumber(ctx context.Context, number int) (*table.Table, error) {
	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tableNumber", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatusByNumber conditionally sets the status of the table with the
// given number. The matched count is reported, not turned into an error.
func (r *GormTableRepository) UpdateStatusByNumber(ctx context.Context, number int, status table.Status) (bool, error) {
	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("number = ?", number).
		Update("status", int(status))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// UpdateStatusByID conditionally sets the status of the table with the
// given opaque id.
func (r *GormTableRepository) UpdateStatusByID(ctx context.Context, id kernel.UUID, status table.Status) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", int(status))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Count returns the number of tables.
func (r *GormTableRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TableDTO{}).Count(&count).Error
	return count, err
}
