package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"storefront/internal/pkg/errs"
)

const (
	minNameLength    = 2
	maxNameLength    = 100
	minAddressLength = 5
	maxAddressLength = 300
)

// phonePattern is the fixed national phone format: +91 XXXXX XXXXX.
// Indian mobile numbers start with 6-9; total 12 digits (2 country + 10 local).
var phonePattern = regexp.MustCompile(`^\+91 [6-9]\d{4} \d{5}$`)

// Customer holds the delivery details captured with an order. It is a value
// type embedded in Order, not a separate entity: the storefront has no
// customer records beyond the identity email attached to the order itself.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// NewCustomer builds a validated Customer. Inputs are trimmed; the name must
// be 2-100 characters, the address 5-300 characters, and the phone must match
// the fixed +91 XXXXX XXXXX format.
func NewCustomer(name, address, phone string) (Customer, error) {
	c := Customer{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		Phone:   strings.TrimSpace(phone),
	}

	if err := c.Validate(); err != nil {
		return Customer{}, err
	}

	return c, nil
}

// Validate re-checks the customer invariants, e.g. when a record is
// reconstructed from persistence.
func (c Customer) Validate() error {
	return errors.Join(
		c.validateName(),
		c.validateAddress(),
		c.validatePhone(),
	)
}

func (c Customer) validateName() error {
	if c.Name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if len(c.Name) < minNameLength || len(c.Name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("customer name length", len(c.Name), minNameLength, maxNameLength)
	}
	return nil
}

func (c Customer) validateAddress() error {
	if c.Address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if len(c.Address) < minAddressLength || len(c.Address) > maxAddressLength {
		return errs.NewValueIsOutOfRangeError("delivery address length", len(c.Address), minAddressLength, maxAddressLength)
	}
	return nil
}

func (c Customer) validatePhone() error {
	if c.Phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(c.Phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q does not match the +91 XXXXX XXXXX format", c.Phone))
	}
	return nil
}
