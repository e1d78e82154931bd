package order

import (
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineItems bounds the number of lines a single order may carry.
const MaxLineItems = 50

// Order represents a customer's placed purchase request. It is the record the
// repository persists and the shape the boundary serves as JSON.
//
// Order follows these invariants:
//   - id is assigned once, at creation, and is collision-resistant (UUID v4)
//   - there is at least one and at most 50 line items, each individually valid
//   - totalAmount equals the sum of the line totals, rounded to 2 decimals
//   - status is monotonically non-decreasing over the order's lifetime;
//     every status change re-stamps updatedAt
//
// UserEmail is the owning customer identifier; it is empty for guest orders,
// in which case the field is omitted from JSON.
type Order struct {
	ID          string     `json:"id"`
	Items       []LineItem `json:"items"`
	Customer    Customer   `json:"customer"`
	UserEmail   string     `json:"userEmail,omitempty"`
	TotalAmount float64    `json:"totalAmount"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewOrder creates a new order from already-resolved line items. It assigns a
// fresh id, computes the grand total from the line totals, sets the status to
// the first state of the flow, and stamps both timestamps.
//
// Returns a validation error when the item list is empty or exceeds
// MaxLineItems, or when any line item or the customer is invalid.
func NewOrder(items []LineItem, customer Customer, userEmail string) (*Order, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if len(items) > MaxLineItems {
		return nil, errs.NewValueIsOutOfRangeError("items", len(items), 1, MaxLineItems)
	}
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return nil, err
		}
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		ID:          uuid.NewString(),
		Items:       items,
		Customer:    customer,
		UserEmail:   userEmail,
		TotalAmount: sumLineTotals(items),
		Status:      Received,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ApplyStatus moves the order to the requested status after validating the
// transition against the forward-only rule, and re-stamps updatedAt.
// Re-applying the current status is a legal no-op that only advances
// updatedAt. On error the stored status is left unchanged.
func (o *Order) ApplyStatus(requested Status) error {
	next, err := o.Status.Transition(requested)
	if err != nil {
		return err
	}

	o.Status = next
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// OwnedBy reports whether the order belongs to the given customer identifier.
// Guest orders (empty UserEmail) are owned by nobody.
func (o *Order) OwnedBy(email string) bool {
	return o.UserEmail != "" && o.UserEmail == email
}

// Validate re-checks the order invariants, e.g. when reconstructing a record
// from persistence. The total is recomputed and compared against the stored
// amount so a corrupted record never flows back to a client unnoticed.
func (o *Order) Validate() error {
	if o.ID == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	if len(o.Items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if len(o.Items) > MaxLineItems {
		return errs.NewValueIsOutOfRangeError("items", len(o.Items), 1, MaxLineItems)
	}
	for _, li := range o.Items {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	if err := o.Customer.Validate(); err != nil {
		return err
	}
	if err := o.Status.Validate(); err != nil {
		return err
	}
	if o.TotalAmount != sumLineTotals(o.Items) {
		return errs.NewValueIsInvalidError("totalAmount")
	}
	return nil
}

func sumLineTotals(items []LineItem) float64 {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(decimal.NewFromFloat(li.LineTotal))
	}
	return total.Round(2).InexactFloat64()
}
