package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when using an
// improperly initialized CreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place an order directly from
// an arbitrary product selection, bypassing the basket. The same product
// may appear in the selection more than once.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), purchaserID,
//	    []kernel.UUID{lampID, lampID, chairID}, "12 Dock Street", "7 Hill Road")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	purchaserID     kernel.UUID
	productIDs      []kernel.UUID
	pickupAddress   string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the identifiers, every member of the selection, and both
// addresses. An empty selection is allowed.
func NewCreateOrderCommand(
	orderID, purchaserID kernel.UUID,
	productIDs []kernel.UUID,
	pickupAddress, deliveryAddress string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setPurchaserID(purchaserID),
		orderCommand.setProductIDs(productIDs),
		orderCommand.setPickupAddress(pickupAddress),
		orderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PurchaserID returns the identifier of the ordering account.
func (c CreateOrderCommand) PurchaserID() kernel.UUID {
	return c.purchaserID
}

// ProductIDs returns the ordered selection, duplicates included.
func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	return c.productIDs
}

// PickupAddress returns where the order is collected from.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns where the order is delivered to.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPurchaserID(purchaserID kernel.UUID) error {
	if err := purchaserID.Validate(); err != nil {
		return err
	}

	c.purchaserID = purchaserID
	return nil
}

func (c *CreateOrderCommand) setProductIDs(productIDs []kernel.UUID) error {
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.productIDs = productIDs
	return nil
}

func (c *CreateOrderCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = pickupAddress
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
