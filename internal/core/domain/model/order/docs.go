// Package order provides the fulfillment model of the marketplace: the
// purchase record that couriers deliver to customers.
//
// The package includes:
//   - Order: the aggregate root holding purchased items, derived totals,
//     addresses, and the assigned courier
//   - Item: an order member snapshotting a product's price and weight
//   - Status: a state machine enforcing the order lifecycle
//
// Key business rules:
//   - Orders must have a valid unique identifier and purchaser
//   - An empty product selection is allowed (a degenerate order)
//   - Membership is a multiset: the same product may appear more than once
//   - Derived price and total weight always match the sum over members
//   - Status follows: created -> {preparing, pending} -> on-the-way ->
//     delivered, with cancelled reachable from any non-terminal state
//   - Membership freezes once the order is delivered or cancelled
//   - Claiming is compare-and-set: a claimed order cannot be claimed again
package order
