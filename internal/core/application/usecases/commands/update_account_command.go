package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrUpdateAccountCommandIsNotConstructed = errors.New(
		"UpdateAccountCommand must be created via NewUpdateAccountCommand constructor",
	)
	ErrFieldsAreRequired = errors.New("at least one field to update is required")
)

// UpdateAccountCommand represents a partial update of an existing account.
// The fields map carries attribute names and replacement values; which keys
// are honored depends on the account's role, and unrecognized keys are
// silently ignored.
type UpdateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	fields    map[string]any

	guard guard.ConstructorGuard
}

// NewUpdateAccountCommand creates a command to update an account's attributes.
// Validates that the account ID is valid and at least one field is provided.
func NewUpdateAccountCommand(accountID kernel.UUID, fields map[string]any) (UpdateAccountCommand, error) {
	updateCommand := UpdateAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setAccountID(accountID),
		updateCommand.setFields(fields),
	); err != nil {
		return UpdateAccountCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAccountCommandIsNotConstructed if validation fails.
func (c UpdateAccountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAccountCommandIsNotConstructed)
}

// AccountID returns the identifier of the account to update.
func (c UpdateAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Fields returns the attributes to overwrite.
func (c UpdateAccountCommand) Fields() map[string]any {
	return c.fields
}

func (c *UpdateAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *UpdateAccountCommand) setFields(fields map[string]any) error {
	if len(fields) == 0 {
		return ErrFieldsAreRequired
	}

	c.fields = fields
	return nil
}
