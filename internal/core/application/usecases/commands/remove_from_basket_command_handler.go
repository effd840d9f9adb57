package commands

import (
	"context"
)

// RemoveFromBasketCommandHandler handles the business logic for basket
// removals.
type RemoveFromBasketCommandHandler struct {
	uowFactory BasketUoWFactory
}

// NewRemoveFromBasketCommandHandler creates a handler for basket removal operations.
// Requires a BasketUoWFactory for transactional persistence.
func NewRemoveFromBasketCommandHandler(uowFactory BasketUoWFactory) RemoveFromBasketCommandHandler {
	return RemoveFromBasketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the basket removal command.
// Removing a product that is not in the basket leaves the basket as is.
func (h *RemoveFromBasketCommandHandler) Handle(ctx context.Context, cmd RemoveFromBasketCommand) error {
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

	aggregate.RemoveProduct(cmd.ProductID())

	if err = basketRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
