package order

import (
	"fmt"

	"storefront/internal/core/domain/model/menu"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MinQuantity and MaxQuantity bound a single line item's quantity.
	MinQuantity = 1
	MaxQuantity = 99
)

// LineItem is one ordered catalog entry. Name and price are snapshots taken
// from the catalog at order-creation time, not live references, so catalog
// edits never change what a historical order was billed.
type LineItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"lineTotal"`
}

// NewLineItem captures a catalog item into an order line. The line total is
// price x quantity rounded to 2 decimals, computed in decimal arithmetic to
// avoid binary-float drift on sums like 12.99 x 2.
func NewLineItem(item menu.Item, quantity int) (LineItem, error) {
	if err := item.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}

	return LineItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   quantity,
		LineTotal:  lineTotal(item.Price, quantity),
	}, nil
}

// Validate re-checks the line item invariants, including that the stored
// line total still matches price x quantity.
func (li LineItem) Validate() error {
	if li.MenuItemID == "" {
		return errs.NewValueIsRequiredError("menuItemId")
	}
	if li.Quantity < MinQuantity || li.Quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", li.Quantity, MinQuantity, MaxQuantity)
	}
	if li.Price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", li.Price))
	}
	if want := lineTotal(li.Price, li.Quantity); li.LineTotal != want {
		return errs.NewValueIsInvalidErrorWithCause("lineTotal",
			fmt.Errorf("%v does not equal price x quantity (%v)", li.LineTotal, want))
	}
	return nil
}

func lineTotal(price float64, quantity int) float64 {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}
