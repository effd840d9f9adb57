package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and claim state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// replacing its membership rows with the aggregate's current members.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order in the system.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllForCustomer retrieves every order placed by the given account.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllUnclaimedPending retrieves all pending orders that no courier
	// has claimed yet. Used by the dispatch workflow.
	GetAllUnclaimedPending(ctx context.Context) ([]*order.Order, error)
}
