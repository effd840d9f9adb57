package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrRetractProductCommandIsNotConstructed is returned when using an
// improperly initialized RetractProductCommand.
var ErrRetractProductCommandIsNotConstructed = errors.New(
	"RetractProductCommand must be created via NewRetractProductCommand constructor",
)

// RetractProductCommand represents a request to remove a product from the
// catalog. Basket rows referencing the product are removed with it; order
// history keeps its ledger entries.
type RetractProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetractProductCommand creates a command to remove a product listing.
// Validates that both identifiers are valid.
func NewRetractProductCommand(productID, actorID kernel.UUID) (RetractProductCommand, error) {
	retractCommand := RetractProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		retractCommand.setProductID(productID),
		retractCommand.setActorID(actorID),
	); err != nil {
		return RetractProductCommand{}, err
	}

	return retractCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRetractProductCommandIsNotConstructed if validation fails.
func (c RetractProductCommand) Validate() error {
	return c.guard.Validate(ErrRetractProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to remove.
func (c RetractProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// ActorID returns the identifier of the account requesting the removal.
func (c RetractProductCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RetractProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RetractProductCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
