package menurepo

import (
	"context"

	"tableservice/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM. The menu
// write side is append-only; reads go through the query handlers.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Add saves a new menu item to the database.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Count returns the number of menu items.
func (r *GormMenuItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Count(&count).Error
	return count, err
}
