package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery retrieves a single account by its identifier, whatever
// role it is registered under.
type GetAccountQuery struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a query to look up an account by ID.
func NewGetAccountQuery(accountID kernel.UUID) (GetAccountQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetAccountQuery{}, err
	}

	return GetAccountQuery{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAccountQueryIsNotConstructed if validation fails.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// AccountID returns the identifier to look up.
func (q GetAccountQuery) AccountID() kernel.UUID {
	return q.accountID
}

// GetAccountQueryResponse represents a single account in the read model,
// tagged with the role it was found under and carrying that role's
// profile fields. The credential is never part of this projection.
type GetAccountQueryResponse struct {
	ID    kernel.UUID
	Role  string
	Name  string
	Email string

	AccountProfile
}
