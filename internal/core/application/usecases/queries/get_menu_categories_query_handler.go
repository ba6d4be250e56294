package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuCategoriesQueryHandler serves the category summary.
type GetMenuCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuCategoriesQueryHandler creates a handler for category queries.
func NewGetMenuCategoriesQueryHandler(db *gorm.DB) GetMenuCategoriesQueryHandler {
	return GetMenuCategoriesQueryHandler{db: db}
}

// Handle returns the distinct categories of available items, alphabetically.
func (h GetMenuCategoriesQueryHandler) Handle(ctx context.Context, query GetMenuCategoriesQuery) ([]MenuCategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]MenuCategoryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category,
			COUNT(*) AS count
		FROM menu_items
		WHERE available
		GROUP BY category
		ORDER BY category ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp MenuCategoryResponse
		if err = rows.Scan(&resp.Category, &resp.Count); err != nil {
			return nil, err
		}
		categories = append(categories, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
