package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler serves the customer-facing menu. Unavailable items are
// filtered out here, not on the client.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle returns the available menu items grouped by category.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]MenuItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category,
			image,
			available,
			created_at
		FROM menu_items
		WHERE available
		ORDER BY category ASC, name ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			name        string
			description string
			price       float64
			category    string
			image       sql.NullString
			available   bool
			createdAt   time.Time
		)

		err = rows.Scan(&id, &name, &description, &price, &category, &image, &available, &createdAt)
		if err != nil {
			return nil, err
		}

		item := MenuItemResponse{
			ID:          id.String(),
			Name:        name,
			Description: description,
			Price:       price,
			Category:    category,
			Available:   available,
			CreatedAt:   createdAt,
		}
		if image.Valid && image.String != "" {
			item.Image = &image.String
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
