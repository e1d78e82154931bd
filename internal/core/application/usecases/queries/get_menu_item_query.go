package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery retrieves a single catalog item by id.
type GetMenuItemQuery struct {
	itemID string

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a single-item catalog lookup.
func NewGetMenuItemQuery(itemID string) (GetMenuItemQuery, error) {
	if itemID == "" {
		return GetMenuItemQuery{}, errs.NewValueIsRequiredError("menuItemId")
	}

	return GetMenuItemQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuItemQueryIsNotConstructed if validation fails.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// ItemID returns the identifier of the catalog item to fetch.
func (q GetMenuItemQuery) ItemID() string {
	return q.itemID
}
