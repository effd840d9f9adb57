package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrGetAllAccountsQueryIsNotConstructed is returned when using an
// improperly initialized GetAllAccountsQuery.
var ErrGetAllAccountsQueryIsNotConstructed = errors.New(
	"GetAllAccountsQuery must be created via NewGetAllAccountsQuery constructor",
)

// GetAllAccountsQuery retrieves every account in the system across all
// role stores. Backs the admin user listing.
type GetAllAccountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAccountsQuery creates a query to retrieve all accounts.
// This is a parameterless query that fetches the complete account list.
func NewGetAllAccountsQuery() GetAllAccountsQuery {
	return GetAllAccountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllAccountsQueryIsNotConstructed if validation fails.
func (q GetAllAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAccountsQueryIsNotConstructed)
}

// GetAllAccountsQueryResponse represents one account in the read model,
// tagged with the role it is registered under and carrying that role's
// profile fields.
type GetAllAccountsQueryResponse struct {
	ID    kernel.UUID
	Role  string
	Name  string
	Email string

	AccountProfile
}
