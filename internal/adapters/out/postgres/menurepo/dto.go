// Package menurepo persists the menu catalog.
package menurepo

import (
	"time"

	"tableservice/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Price       float64
	Category    string `gorm:"index"`
	Image       string
	Available   bool
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
}

// TableName overrides GORM's naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		Category:    item.Category(),
		Image:       item.Image(),
		Available:   item.Available(),
		CreatedAt:   item.CreatedAt(),
	}
}
