package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the catalog, optionally filtered by category.
type GetMenuQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a catalog listing. An empty category returns the
// whole menu; otherwise items are filtered case-insensitively.
func NewGetMenuQuery(category string) GetMenuQuery {
	return GetMenuQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// Category returns the requested category filter, empty for no filter.
func (q GetMenuQuery) Category() string {
	return q.category
}
