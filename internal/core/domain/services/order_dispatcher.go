package services

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no suitable courier is available for
// order dispatch. This occurs when either no couriers are provided or none
// of the provided couriers is currently active.
var ErrCourierNotFound = errors.New("courier not found")

// OrderDispatcher is a domain service responsible for finding and assigning
// an available courier to an unclaimed order.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Selecting an active courier for the delivery
//   - Ensuring the claim workflow is atomic
//
// Business rules:
//   - Orders must be valid and unclaimed before dispatch
//   - Couriers must be active to take an order
//   - An order already claimed by another courier is never reassigned
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	courier, err := dispatcher.Dispatch(order, couriers)
//	if errors.Is(err, services.ErrCourierNotFound) {
//	    // No available couriers for this order
//	    return
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch selects an active courier for the given order and claims the
// order on their behalf. Returns the courier the order was assigned to.
func (o OrderDispatcher) Dispatch(ord *order.Order, couriers []*account.Courier) (*account.Courier, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	courier, err := o.findAvailableCourier(couriers)
	if err != nil {
		return nil, err
	}

	if err = ord.Claim(courier.ID()); err != nil {
		return nil, err
	}

	return courier, nil
}

// findAvailableCourier returns the first active courier from the provided
// slice. Inactive couriers are skipped.
func (o OrderDispatcher) findAvailableCourier(couriers []*account.Courier) (*account.Courier, error) {
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsActive() {
			continue
		}

		return c, nil
	}

	return nil, ErrCourierNotFound
}
