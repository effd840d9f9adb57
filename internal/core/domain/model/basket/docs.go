// Package basket provides the pre-purchase product selection model.
//
// The package includes:
//   - Basket: a customer's mutable product selection with a live derived price
//   - Item: a member of the basket, snapshotting a product's price and weight
//
// Key business rules:
//   - Each customer owns at most one basket
//   - Membership has set semantics: a product appears at most once
//   - The derived price always equals the sum of current member prices;
//     membership and price change together, never independently
//   - Removing an absent product is a no-op, not an error
package basket
