package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrRemoveFromBasketCommandIsNotConstructed is returned when using an
// improperly initialized RemoveFromBasketCommand.
var ErrRemoveFromBasketCommandIsNotConstructed = errors.New(
	"RemoveFromBasketCommand must be created via NewRemoveFromBasketCommand constructor",
)

// RemoveFromBasketCommand represents a customer's request to take a
// product out of their basket. Removing a product that is not in the
// basket has no effect.
type RemoveFromBasketCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFromBasketCommand creates a command to remove a product from a basket.
// Validates that both identifiers are valid.
func NewRemoveFromBasketCommand(customerID, productID kernel.UUID) (RemoveFromBasketCommand, error) {
	removeCommand := RemoveFromBasketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setCustomerID(customerID),
		removeCommand.setProductID(productID),
	); err != nil {
		return RemoveFromBasketCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveFromBasketCommandIsNotConstructed if validation fails.
func (c RemoveFromBasketCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromBasketCommandIsNotConstructed)
}

// CustomerID returns the identifier of the basket's owner.
func (c RemoveFromBasketCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the product to remove.
func (c RemoveFromBasketCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveFromBasketCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveFromBasketCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
