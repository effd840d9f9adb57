// Package kernel provides shared value objects used across the marketplace
// domain model. It currently contains the UUID identifier type that all
// aggregates use for identity.
//
// Value objects in this package are immutable and validate themselves;
// their zero values are invalid and must be created through constructors.
package kernel
