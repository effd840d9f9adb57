package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// RetractProductCommandHandler handles the business logic for removing
// product listings. Only the owning service offeror may retract a product.
type RetractProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRetractProductCommandHandler creates a handler for product removal operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewRetractProductCommandHandler(uowFactory ProductUoWFactory) RetractProductCommandHandler {
	return RetractProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product removal command.
// Returns a forbidden error when the actor does not own the product.
// Basket membership rows referencing the product are removed in the same
// transaction by the repository.
func (h *RetractProductCommandHandler) Handle(ctx context.Context, cmd RetractProductCommand) error {
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

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.ActorID()) {
		return errs.NewObjectForbiddenError("productId", cmd.ProductID().String())
	}

	if err = productRepo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
