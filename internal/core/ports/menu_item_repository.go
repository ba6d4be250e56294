package ports

import (
	"context"

	"tableservice/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
// Listing and category aggregation are read-side concerns served by the
// query handlers, so the write-side contract stays minimal.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.Item) error

	// Count returns the number of menu items. Used by the idempotent seed path.
	Count(ctx context.Context) (int64, error)
}
