package services

import (
	"errors"

	"marketplace/internal/core/domain/model/basket"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ErrBasketIsEmpty is returned when checkout is attempted on a basket
// with no members. An order can legally hold zero products, but a
// checkout of nothing is a customer mistake rather than an intent.
var ErrBasketIsEmpty = errors.New("basket is empty")

// CheckoutService is a domain service that converts a customer's basket
// into a new order and empties the basket as part of the same workflow.
//
// Business rules:
//   - The basket must be valid and hold at least one product
//   - The order's members are the basket's members at checkout time
//   - The basket is cleared only after the order is constructed
//
// Example usage:
//
//	checkout := services.NewCheckoutService()
//	order, err := checkout.Checkout(basket, pickup, delivery)
//	if errors.Is(err, services.ErrBasketIsEmpty) {
//	    // Nothing to order
//	    return
//	}
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout builds a new order from the basket's current members and then
// clears the basket. The returned order belongs to the basket's customer
// and starts in pending status.
func (s CheckoutService) Checkout(b *basket.Basket, pickupAddress, deliveryAddress string) (*order.Order, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	members := b.Items()
	if len(members) == 0 {
		return nil, ErrBasketIsEmpty
	}

	items := make([]order.Item, 0, len(members))
	for _, m := range members {
		item, err := order.NewItem(m.ProductID(), m.Price(), m.Weight())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), b.CustomerID(), items, pickupAddress, deliveryAddress)
	if err != nil {
		return nil, err
	}

	b.Clear()

	return newOrder, nil
}
