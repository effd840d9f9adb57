package commands

import (
	"context"
)

// ClaimOrderCommandHandler handles the business logic for order claims.
// The courier must exist; the claim itself is a compare-and-set on the
// order's courier slot, so losing a race surfaces as a conflict.
type ClaimOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for order claim operations.
// Requires a DispatchUoWFactory for transactional persistence.
func NewClaimOrderCommandHandler(uowFactory DispatchUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order claim command.
// Returns a conflict error when another courier already claimed the order.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	courier, err := uow.AccountRepository().GetCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Claim(courier.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
