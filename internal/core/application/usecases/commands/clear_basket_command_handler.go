package commands

import (
	"context"
)

// ClearBasketCommandHandler handles the business logic for emptying baskets.
type ClearBasketCommandHandler struct {
	uowFactory BasketUoWFactory
}

// NewClearBasketCommandHandler creates a handler for basket clearing operations.
// Requires a BasketUoWFactory for transactional persistence.
func NewClearBasketCommandHandler(uowFactory BasketUoWFactory) ClearBasketCommandHandler {
	return ClearBasketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the basket clearing command.
// Clearing an already empty basket is a no-op.
func (h *ClearBasketCommandHandler) Handle(ctx context.Context, cmd ClearBasketCommand) error {
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

	aggregate.Clear()

	if err = basketRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
