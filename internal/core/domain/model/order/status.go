package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The four states form a
// fixed ordered flow and an order's status only ever moves forward through it:
//
//	Order Received ──> Preparing ──> Out for Delivery ──> Delivered
//
// A state's position in the flow is its rank. Transition requests targeting a
// lower rank are rejected; targeting the current rank is a legal no-op, which
// keeps status updates idempotent for retrying callers.
//
// The string values are wire-visible and must not change.
type Status string

const (
	// Received is the initial status assigned when an order is created.
	Received Status = "Order Received"

	// Preparing indicates the kitchen has started on the order.
	Preparing Status = "Preparing"

	// OutForDelivery indicates the order has left for the customer's address.
	OutForDelivery Status = "Out for Delivery"

	// Delivered is the terminal status. No further transitions are allowed
	// and the progression simulator releases the order's timer on reaching it.
	Delivered Status = "Delivered"
)

// statusFlow is the single source of truth for ordering. Index = rank.
var statusFlow = []Status{Received, Preparing, OutForDelivery, Delivered}

// Flow returns the ordered status sequence. The returned slice is a copy.
func Flow() []Status {
	flow := make([]Status, len(statusFlow))
	copy(flow, statusFlow)
	return flow
}

// ParseStatus converts a raw string into a Status.
// Unknown strings are invalid input and never reach the transition logic.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that the status is one of the four flow states.
func (s Status) Validate() error {
	if s.Rank() < 0 {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Rank returns the status's 0-based position in the flow, or -1 for
// unknown values.
func (s Status) Rank() int {
	for i, st := range statusFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether the status is the last state of the flow.
func (s Status) IsTerminal() bool {
	return s == statusFlow[len(statusFlow)-1]
}

// Next returns the status that follows this one in the flow.
// The second return value is false when the status is terminal (or unknown),
// meaning there is nothing left to progress to.
func (s Status) Next() (Status, bool) {
	rank := s.Rank()
	if rank < 0 || rank+1 >= len(statusFlow) {
		return "", false
	}
	return statusFlow[rank+1], true
}

// Transition validates a requested status change against the forward-only rule
// and returns the status to store.
//
// Valid transitions:
//   - any move to a strictly higher rank, including skipping stages
//   - re-applying the current rank (idempotent no-op)
//
// Invalid transitions:
//   - any move to a lower rank (returns IllegalTransitionError)
//   - unknown current or requested status (returns ValueIsInvalidError)
//
// The method is a pure function of the two statuses; it never mutates state.
func (s Status) Transition(requested Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if err := requested.Validate(); err != nil {
		return "", err
	}

	if requested.Rank() < s.Rank() {
		return "", errs.NewIllegalTransitionError(string(s), string(requested))
	}

	return requested, nil
}
