package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrClearBasketCommandIsNotConstructed is returned when using an
// improperly initialized ClearBasketCommand.
var ErrClearBasketCommandIsNotConstructed = errors.New(
	"ClearBasketCommand must be created via NewClearBasketCommand constructor",
)

// ClearBasketCommand represents a customer's request to empty their basket.
type ClearBasketCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearBasketCommand creates a command to empty a basket.
// Validates that the customer identifier is valid.
func NewClearBasketCommand(customerID kernel.UUID) (ClearBasketCommand, error) {
	clearCommand := ClearBasketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := clearCommand.setCustomerID(customerID); err != nil {
		return ClearBasketCommand{}, err
	}

	return clearCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearBasketCommandIsNotConstructed if validation fails.
func (c ClearBasketCommand) Validate() error {
	return c.guard.Validate(ErrClearBasketCommandIsNotConstructed)
}

// CustomerID returns the identifier of the basket's owner.
func (c ClearBasketCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *ClearBasketCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
