package queries

import (
	"context"

	"tableservice/internal/core/domain/model/table"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTablesQueryHandler serves the floor plan from the table registry.
type GetTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetTablesQueryHandler creates a handler for table queries.
func NewGetTablesQueryHandler(db *gorm.DB) GetTablesQueryHandler {
	return GetTablesQueryHandler{db: db}
}

// Handle returns every table ordered by number.
func (h GetTablesQueryHandler) Handle(ctx context.Context, query GetTablesQuery) ([]TableResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]TableResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			capacity,
			guests
		FROM tables
		ORDER BY number ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       uuid.UUID
			number   int
			status   table.Status
			capacity int
			guests   int
		)

		if err = rows.Scan(&id, &number, &status, &capacity, &guests); err != nil {
			return nil, err
		}

		tables = append(tables, TableResponse{
			ID:               id.String(),
			Number:           number,
			Status:           status.String(),
			Capacity:         capacity,
			CurrentCustomers: guests,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
