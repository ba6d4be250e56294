package queries

import (
	"errors"

	"tableservice/internal/pkg/guard"
)

var ErrGetTablesQueryIsNotConstructed = errors.New(
	"GetTablesQuery must be created via NewGetTablesQuery constructor",
)

// GetTablesQuery retrieves every table with its occupancy status, ordered by
// table number for a stable floor-plan view.
type GetTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTablesQuery creates a query for the table registry.
func NewGetTablesQuery() GetTablesQuery {
	return GetTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetTablesQueryIsNotConstructed)
}

// TableResponse is the public shape of a dining table.
type TableResponse struct {
	ID               string `json:"id"`
	Number           int    `json:"number"`
	Status           string `json:"status"`
	Capacity         int    `json:"capacity"`
	CurrentCustomers int    `json:"current_customers"`
}
