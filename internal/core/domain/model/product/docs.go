// Package product provides the catalog entry model for the marketplace.
//
// The package includes:
//   - Product: a purchasable item owned by exactly one service offeror
//   - Status: the availability state of a catalog entry
//
// Key business rules:
//   - Products must have a valid unique identifier, name, and owner
//   - Price and weight are non-negative, enforced at creation and update time
//   - Ownership is set at publication and immutable afterwards
//   - New products start pending and become purchasable once approved
//   - Availability transitions are unconditional: any valid status may be
//     set from any other, there is no transition table for catalog entries
package product
