package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrGetMenuCategoriesQueryIsNotConstructed = errors.New(
	"GetMenuCategoriesQuery must be created via NewGetMenuCategoriesQuery constructor",
)

// GetMenuCategoriesQuery retrieves the distinct catalog categories.
// This is a parameterless query.
type GetMenuCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuCategoriesQuery creates a query for the category list.
func NewGetMenuCategoriesQuery() GetMenuCategoriesQuery {
	return GetMenuCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuCategoriesQueryIsNotConstructed if validation fails.
func (q GetMenuCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuCategoriesQueryIsNotConstructed)
}
