// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetAccountByEmailQueryIsNotConstructed = errors.New(
		"GetAccountByEmailQuery must be created via NewGetAccountByEmailQuery constructor",
	)
	ErrQueryEmailIsRequired = errors.New("email is required")
)

// GetAccountByEmailQuery retrieves a single account by its email address,
// whatever role it is registered under. Backs the login endpoint, so the
// response includes the stored credential for comparison.
//
// Example:
//
//	query, _ := NewGetAccountByEmailQuery("dana@example.com")
//	handler := NewGetAccountByEmailQueryHandler(db)
//
//	acct, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Unknown email
//	    return
//	}
type GetAccountByEmailQuery struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewGetAccountByEmailQuery creates a query to look up an account by email.
// Validates that the email is not empty.
func NewGetAccountByEmailQuery(email string) (GetAccountByEmailQuery, error) {
	if email == "" {
		return GetAccountByEmailQuery{}, ErrQueryEmailIsRequired
	}

	return GetAccountByEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAccountByEmailQueryIsNotConstructed if validation fails.
func (q GetAccountByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountByEmailQueryIsNotConstructed)
}

// Email returns the address to look up.
func (q GetAccountByEmailQuery) Email() string {
	return q.email
}

// AccountProfile carries the role-specific projection fields. Fields not
// belonging to the account's role stay at their zero values: address and
// phone are customer fields, status belongs to admins and couriers, salary
// to couriers, area to couriers and service offerors, service type to
// service offerors.
type AccountProfile struct {
	Address     string
	Phone       string
	Status      string
	Salary      float64
	Area        string
	ServiceType string
}

// GetAccountByEmailQueryResponse represents a single account in the read
// model, tagged with the role it was found under. Credential is included
// for the login flow and must not be echoed to clients.
type GetAccountByEmailQueryResponse struct {
	ID         kernel.UUID
	Role       string
	Name       string
	Email      string
	Credential string

	AccountProfile
}
