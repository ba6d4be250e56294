// Package queries contains the read side of the coordinator. Query handlers
// bypass the domain model and read directly from the database, shaping rows
// into response structs that marshal to the public JSON contract.
package queries

import (
	"errors"
	"time"

	"tableservice/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the full order history, newest first.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order history.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderItemResponse is one line item as exposed over the API. The price is
// the per-unit snapshot taken when the order was placed.
type OrderItemResponse struct {
	MenuItemID      string  `json:"menu_item_id"`
	MenuItemName    string  `json:"menu_item_name"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// OrderResponse is the public shape of an order.
type OrderResponse struct {
	ID              string              `json:"id"`
	TableNumber     int                 `json:"table_number"`
	Items           []OrderItemResponse `json:"items"`
	Status          string              `json:"status"`
	TotalAmount     float64             `json:"total_amount"`
	WaiterName      string              `json:"waiter_name"`
	SpecialRequests *string             `json:"special_requests,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
