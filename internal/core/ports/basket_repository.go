package ports

import (
	"context"

	"marketplace/internal/core/domain/model/basket"
	"marketplace/internal/core/domain/model/kernel"
)

// BasketRepository defines the persistence contract for basket aggregates.
// Every customer owns exactly one basket, created at sign-up.
type BasketRepository interface {
	// Add persists a new basket aggregate to storage.
	Add(ctx context.Context, aggregate *basket.Basket) error

	// Update persists changes to an existing basket aggregate,
	// replacing its membership rows with the aggregate's current members.
	Update(ctx context.Context, aggregate *basket.Basket) error

	// Get retrieves a basket aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*basket.Basket, error)

	// GetByCustomer retrieves the basket owned by the given customer.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*basket.Basket, error)
}
