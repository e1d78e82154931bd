// Package menu holds the read-only catalog reference data. Menu items are
// seeded once at startup and never mutated by the order lifecycle engine.
package menu

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Item is a catalog entry. Orders never reference items live: the name and
// price are snapshotted into the order's line items at creation time.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category"`
}

// Validate checks the invariants of seeded catalog data.
func (i Item) Validate() error {
	if i.ID == "" {
		return errs.NewValueIsRequiredError("menu item id")
	}
	if i.Name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	if i.Price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu item price",
			fmt.Errorf("%v is negative", i.Price))
	}
	if i.Category == "" {
		return errs.NewValueIsRequiredError("menu item category")
	}
	return nil
}
