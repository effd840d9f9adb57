package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrEditProductCommandIsNotConstructed is returned when using an
// improperly initialized EditProductCommand.
var ErrEditProductCommandIsNotConstructed = errors.New(
	"EditProductCommand must be created via NewEditProductCommand constructor",
)

// EditProductCommand represents a request to overwrite a product's name,
// price, and details. Only the owning service offeror may edit a product;
// ownership is enforced by the handler.
type EditProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	actorID   kernel.UUID
	name      string
	price     float64
	details   string

	guard guard.ConstructorGuard
}

// NewEditProductCommand creates a command to edit a product listing.
// Validates that the IDs are valid, the name is not empty, and the price
// is not negative.
func NewEditProductCommand(
	productID, actorID kernel.UUID,
	name string,
	price float64,
	details string,
) (EditProductCommand, error) {
	editCommand := EditProductCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setProductID(productID),
		editCommand.setActorID(actorID),
		editCommand.setName(name),
		editCommand.setPrice(price),
	); err != nil {
		return EditProductCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditProductCommandIsNotConstructed if validation fails.
func (c EditProductCommand) Validate() error {
	return c.guard.Validate(ErrEditProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to edit.
func (c EditProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// ActorID returns the identifier of the account requesting the edit.
func (c EditProductCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the replacement display name.
func (c EditProductCommand) Name() string {
	return c.name
}

// Price returns the replacement unit price.
func (c EditProductCommand) Price() float64 {
	return c.price
}

// Details returns the replacement description.
func (c EditProductCommand) Details() string {
	return c.details
}

func (c *EditProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *EditProductCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *EditProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *EditProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
