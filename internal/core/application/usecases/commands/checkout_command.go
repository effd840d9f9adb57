package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrPickupAddressIsRequired   = errors.New("pickup address is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CheckoutCommand represents a customer's request to turn their basket
// into an order. The basket is emptied as part of the same transaction.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	pickupAddress   string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out a basket.
// Validates that the customer identifier is valid and both addresses are
// provided.
func NewCheckoutCommand(customerID kernel.UUID, pickupAddress, deliveryAddress string) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setPickupAddress(pickupAddress),
		checkoutCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the identifier of the checking-out customer.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns where the order is collected from.
func (c CheckoutCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns where the order is delivered to.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = pickupAddress
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
