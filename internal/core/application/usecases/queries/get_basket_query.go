package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrGetBasketQueryIsNotConstructed is returned when using an improperly
// initialized GetBasketQuery.
var ErrGetBasketQueryIsNotConstructed = errors.New(
	"GetBasketQuery must be created via NewGetBasketQuery constructor",
)

// GetBasketQuery retrieves a customer's basket with its members and the
// derived total price.
type GetBasketQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBasketQuery creates a query to retrieve a customer's basket.
// Validates that the customer identifier is valid.
func NewGetBasketQuery(customerID kernel.UUID) (GetBasketQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetBasketQuery{}, err
	}

	return GetBasketQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBasketQueryIsNotConstructed if validation fails.
func (q GetBasketQuery) Validate() error {
	return q.guard.Validate(ErrGetBasketQueryIsNotConstructed)
}

// CustomerID returns the identifier of the basket's owner.
func (q GetBasketQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetBasketQueryItemResponse represents one basket member in the read
// model, with price and weight joined in from the catalog.
type GetBasketQueryItemResponse struct {
	ProductID kernel.UUID
	Name      string
	Price     float64
	Weight    float64
}

// GetBasketQueryResponse represents a basket in the read model.
// Price is the sum of the member prices.
type GetBasketQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Items      []GetBasketQueryItemResponse
	Price      float64
}
