// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for the polymorphic
// account aggregates. Each concrete role is stored in its own table; the
// repository resolves the role from the aggregate it is handed.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// The account must be valid and its email must not already be taken
	// by an account of any role.
	Add(ctx context.Context, aggregate account.Account) error

	// Update persists changes to an existing account aggregate.
	// The account must exist in the repository and be valid.
	Update(ctx context.Context, aggregate account.Account) error

	// Get retrieves an account of any role by its unique identifier.
	// Roles are probed in a fixed order: customer, admin, service
	// offeror, courier.
	Get(ctx context.Context, id kernel.UUID) (account.Account, error)

	// GetByEmail retrieves an account of any role by its email address.
	// Roles are probed in the same fixed order as Get. Email is unique
	// across roles, so at most one account matches.
	GetByEmail(ctx context.Context, email string) (account.Account, error)

	// GetCustomer retrieves a customer aggregate by its unique identifier.
	GetCustomer(ctx context.Context, id kernel.UUID) (*account.Customer, error)

	// GetAdmin retrieves an admin aggregate by its unique identifier.
	GetAdmin(ctx context.Context, id kernel.UUID) (*account.Admin, error)

	// GetCourier retrieves a courier aggregate by its unique identifier.
	GetCourier(ctx context.Context, id kernel.UUID) (*account.Courier, error)

	// GetServiceOfferor retrieves a service offeror aggregate by its unique identifier.
	GetServiceOfferor(ctx context.Context, id kernel.UUID) (*account.ServiceOfferor, error)

	// GetAllActiveCouriers retrieves every courier whose status is active.
	// Used by the dispatch workflow to find candidates for unclaimed orders.
	GetAllActiveCouriers(ctx context.Context) ([]*account.Courier, error)
}
