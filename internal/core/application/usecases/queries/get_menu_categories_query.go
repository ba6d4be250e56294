package queries

import (
	"errors"

	"tableservice/internal/pkg/guard"
)

var ErrGetMenuCategoriesQueryIsNotConstructed = errors.New(
	"GetMenuCategoriesQuery must be created via NewGetMenuCategoriesQuery constructor",
)

// GetMenuCategoriesQuery retrieves the distinct menu categories with their
// available-item counts, for building category filters.
type GetMenuCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuCategoriesQuery creates a query for the category summary.
func NewGetMenuCategoriesQuery() GetMenuCategoriesQuery {
	return GetMenuCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuCategoriesQueryIsNotConstructed)
}

// MenuCategoryResponse is one category with its available-item count.
type MenuCategoryResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
