package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPublishProductCommandIsNotConstructed = errors.New(
		"PublishProductCommand must be created via NewPublishProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrPriceIsInvalid        = errors.New("price must not be negative")
	ErrWeightIsInvalid       = errors.New("weight must not be negative")
)

// PublishProductCommand represents a service offeror's request to list a
// new product in the catalog. The product starts unapproved and becomes
// purchasable only after an admin approves it.
type PublishProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	ownerID   kernel.UUID
	name      string
	details   string
	weight    float64
	price     float64
	category  string

	guard guard.ConstructorGuard
}

// NewPublishProductCommand creates a command to list a new product.
// Validates that the IDs are valid, the name is not empty, and price and
// weight are not negative.
func NewPublishProductCommand(
	productID, ownerID kernel.UUID,
	name, details string,
	weight, price float64,
	category string,
) (PublishProductCommand, error) {
	publishCommand := PublishProductCommand{
		details:  details,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		publishCommand.setProductID(productID),
		publishCommand.setOwnerID(ownerID),
		publishCommand.setName(name),
		publishCommand.setWeight(weight),
		publishCommand.setPrice(price),
	); err != nil {
		return PublishProductCommand{}, err
	}

	return publishCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPublishProductCommandIsNotConstructed if validation fails.
func (c PublishProductCommand) Validate() error {
	return c.guard.Validate(ErrPublishProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c PublishProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// OwnerID returns the identifier of the offering account.
func (c PublishProductCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the product's display name.
func (c PublishProductCommand) Name() string {
	return c.name
}

// Details returns the free-form product description.
func (c PublishProductCommand) Details() string {
	return c.details
}

// Weight returns the product's shipping weight.
func (c PublishProductCommand) Weight() float64 {
	return c.weight
}

// Price returns the product's unit price.
func (c PublishProductCommand) Price() float64 {
	return c.price
}

// Category returns the catalog category the product is filed under.
func (c PublishProductCommand) Category() string {
	return c.category
}

func (c *PublishProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *PublishProductCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *PublishProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *PublishProductCommand) setWeight(weight float64) error {
	if weight < 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *PublishProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
