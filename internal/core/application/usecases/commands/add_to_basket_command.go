package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrAddToBasketCommandIsNotConstructed is returned when using an
// improperly initialized AddToBasketCommand.
var ErrAddToBasketCommandIsNotConstructed = errors.New(
	"AddToBasketCommand must be created via NewAddToBasketCommand constructor",
)

// AddToBasketCommand represents a customer's request to put a product in
// their basket. A basket holds each product at most once, so repeating
// the command has no further effect.
type AddToBasketCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddToBasketCommand creates a command to add a product to a basket.
// Validates that both identifiers are valid.
func NewAddToBasketCommand(customerID, productID kernel.UUID) (AddToBasketCommand, error) {
	addCommand := AddToBasketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setCustomerID(customerID),
		addCommand.setProductID(productID),
	); err != nil {
		return AddToBasketCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddToBasketCommandIsNotConstructed if validation fails.
func (c AddToBasketCommand) Validate() error {
	return c.guard.Validate(ErrAddToBasketCommandIsNotConstructed)
}

// CustomerID returns the identifier of the basket's owner.
func (c AddToBasketCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the product to add.
func (c AddToBasketCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *AddToBasketCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddToBasketCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
