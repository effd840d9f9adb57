package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// CheckoutCommandHandler handles the business logic for basket checkout.
// Delegates the conversion to the checkout domain service and persists
// the new order and the emptied basket atomically.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	checkout   services.CheckoutService
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		checkout:   services.NewCheckoutService(),
	}
}

// Handle processes the checkout command.
// Fails when the customer has no basket or the basket is empty.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	basketRepo := uow.BasketRepository()

	aggregate, err := basketRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	newOrder, err := h.checkout.Checkout(aggregate, cmd.PickupAddress(), cmd.DeliveryAddress())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = basketRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
