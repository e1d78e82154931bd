// Package order provides domain entities and business logic for order management
// in the storefront. It implements the Order entity with its lifecycle and the
// forward-only status state machine.
//
// The package includes:
//   - Order: the persisted order record with line items, customer details,
//     monetary total, and lifecycle status
//   - LineItem: a catalog reference with name and price captured at order
//     creation time, so later catalog changes never affect historical orders
//   - Customer: delivery details embedded in the order, validated on construction
//   - Status: the fixed four-stage flow an order progresses through
//
// Key business rules:
//   - An order carries between 1 and 50 line items, each with quantity 1-99
//   - The total amount always equals the sum of line totals, rounded to 2 decimals
//   - Status only moves forward through the flow; re-applying the current
//     status is a legal no-op that advances updatedAt only
//   - Orders can only be created through NewOrder, which assigns the id,
//     the initial status, and both timestamps
package order
