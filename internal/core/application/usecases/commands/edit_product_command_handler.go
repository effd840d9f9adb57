package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// EditProductCommandHandler handles the business logic for product edits.
// Only the owning service offeror may change a listing; anyone else gets
// a forbidden error regardless of their role.
type EditProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewEditProductCommandHandler creates a handler for product edit operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewEditProductCommandHandler(uowFactory ProductUoWFactory) EditProductCommandHandler {
	return EditProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product edit command.
// Returns a forbidden error when the actor does not own the product.
func (h *EditProductCommandHandler) Handle(ctx context.Context, cmd EditProductCommand) error {
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

	if err = aggregate.Update(cmd.Name(), cmd.Price(), cmd.Details()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
