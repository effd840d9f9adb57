package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrGetAllProductsQueryIsNotConstructed is returned when using an
// improperly initialized GetAllProductsQuery.
var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves the product catalog. With the
// available-only filter set, unapproved listings are excluded, which is
// the storefront view; without it, the full catalog is returned for
// admins and owners.
type GetAllProductsQuery struct { //nolint:recvcheck //using for validation
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve the catalog.
// availableOnly restricts the result to approved listings.
func NewGetAllProductsQuery(availableOnly bool) GetAllProductsQuery {
	return GetAllProductsQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllProductsQueryIsNotConstructed if validation fails.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// AvailableOnly reports whether unapproved listings are excluded.
func (q GetAllProductsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// GetAllProductsQueryResponse represents one catalog entry in the read model.
type GetAllProductsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Details  string
	Weight   float64
	Price    float64
	Category string
	Status   string
	OwnerID  kernel.UUID
}
