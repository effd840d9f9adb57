// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the marketplace. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - CheckoutService: converts a basket's current members into an order
//     and empties the basket
//   - OrderDispatcher: a domain service for finding and assigning couriers
//     to unclaimed orders
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
