package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"tableservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler serves the order history straight from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order history queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns every order, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_number,
			items,
			status,
			total_amount,
			waiter_name,
			note,
			created_at,
			updated_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// scanOrderRows maps order rows into API responses. Shared by the history
// and active-orders handlers, which select the same columns.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id          uuid.UUID
			tableNumber int
			itemsRaw    []byte
			status      order.Status
			totalAmount float64
			waiterName  string
			note        sql.NullString
			createdAt   time.Time
			updatedAt   time.Time
		)

		err := rows.Scan(
			&id,
			&tableNumber,
			&itemsRaw,
			&status,
			&totalAmount,
			&waiterName,
			&note,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		items := make([]OrderItemResponse, 0)
		if err = json.Unmarshal(itemsRaw, &items); err != nil {
			return nil, err
		}

		resp := OrderResponse{
			ID:          id.String(),
			TableNumber: tableNumber,
			Items:       items,
			Status:      status.String(),
			TotalAmount: totalAmount,
			WaiterName:  waiterName,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		}
		if note.Valid {
			resp.SpecialRequests = &note.String
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
