package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// ItemSelection is one requested catalog entry: which item and how many.
// Resolution against the live catalog happens in the handler.
type ItemSelection struct {
	MenuItemID string
	Quantity   int
}

// PlaceOrderCommand represents a request to place a new order.
// Carries the raw selections and customer contact details; catalog
// resolution and pricing happen during handling.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    []ItemSelection{{MenuItemID: "1", Quantity: 2}},
//	    "Priya Sharma", "12 MG Road, Bengaluru", "+91 98765 43210",
//	    "priya@mail.com",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	selections      []ItemSelection
	customerName    string
	customerAddress string
	customerPhone   string
	userEmail       string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Validates
// that at least one selection is present, the list fits the order size
// limit, and every selection names an item and a legal quantity. The
// userEmail may be empty for guest orders.
func NewPlaceOrderCommand(
	selections []ItemSelection, customerName, customerAddress, customerPhone, userEmail string,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setSelections(selections),
		placeCommand.setCustomer(customerName, customerAddress, customerPhone),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	placeCommand.userEmail = userEmail
	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Selections returns the requested catalog entries.
func (c PlaceOrderCommand) Selections() []ItemSelection {
	return c.selections
}

// CustomerName returns the delivery contact name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerAddress returns the delivery address.
func (c PlaceOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// CustomerPhone returns the delivery contact phone number.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// UserEmail returns the owning customer identifier, empty for guests.
func (c PlaceOrderCommand) UserEmail() string {
	return c.userEmail
}

func (c *PlaceOrderCommand) setSelections(selections []ItemSelection) error {
	if len(selections) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if len(selections) > order.MaxLineItems {
		return errs.NewValueIsOutOfRangeError("items", len(selections), 1, order.MaxLineItems)
	}
	for _, sel := range selections {
		if sel.MenuItemID == "" {
			return errs.NewValueIsRequiredError("menuItemId")
		}
		if sel.Quantity < order.MinQuantity || sel.Quantity > order.MaxQuantity {
			return errs.NewValueIsOutOfRangeError("quantity",
				sel.Quantity, order.MinQuantity, order.MaxQuantity)
		}
	}

	c.selections = selections
	return nil
}

func (c *PlaceOrderCommand) setCustomer(name, address, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}

	c.customerName = name
	c.customerAddress = address
	c.customerPhone = phone
	return nil
}
