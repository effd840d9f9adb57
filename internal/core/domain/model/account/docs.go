// Package account provides the polymorphic account model for the marketplace.
// One shared Identity contract (id, name, email, credential) underlies four
// mutually exclusive concrete roles: Customer, Admin, Courier, and
// ServiceOfferor.
//
// The package includes:
//   - Identity: shared attributes and credential checking, reused via composition
//   - Role: a tagged enumeration disambiguating the four concrete kinds
//   - Customer, Admin, Courier, ServiceOfferor: role aggregates with their
//     own field sets, permissive partial updates, and profile projections
//   - Account: the interface all four roles satisfy
//
// Key business rules:
//   - Accounts must have a valid unique identifier, name, email, and credential
//   - Email is unique across the union of all four roles, enforced at sign-up
//   - Credential checks compare the stored secret verbatim
//   - Partial updates overwrite recognized fields and silently ignore the rest
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package account
