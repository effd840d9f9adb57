package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrGetOrdersQueryIsNotConstructed is returned when using an improperly
// initialized GetOrdersQuery.
var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, either system-wide or for one
// purchaser. Each order comes back with its derived totals and the
// selection it was placed with, duplicates included.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve every order in the system.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersForCustomerQuery creates a query to retrieve one
// purchaser's orders. Validates that the customer identifier is valid.
func NewGetOrdersForCustomerQuery(customerID kernel.UUID) (GetOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		customerID: &customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the purchaser filter, or nil for the full listing.
func (q GetOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// GetOrdersQueryResponse represents one order in the read model.
// CourierID is nil while no courier has claimed the order.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CourierID       *kernel.UUID
	Status          string
	Price           float64
	TotalWeight     float64
	CreatedAt       time.Time
	PickupAddress   string
	DeliveryAddress string
	ProductIDs      []kernel.UUID
}
