package commands

import (
	"context"

	"marketplace/internal/core/domain/model/product"
)

// PublishProductCommandHandler handles the business logic for listing
// new products. Verifies the owner is a registered service offeror and
// stores the product in pending status.
type PublishProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewPublishProductCommandHandler creates a handler for product listing operations.
// Requires a CatalogUoWFactory for transactional persistence.
func NewPublishProductCommandHandler(uowFactory CatalogUoWFactory) PublishProductCommandHandler {
	return PublishProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product listing command.
// Returns a not-found error when the owner is not a service offeror.
func (h *PublishProductCommandHandler) Handle(ctx context.Context, cmd PublishProductCommand) error {
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

	if _, err := uow.AccountRepository().GetServiceOfferor(ctx, cmd.OwnerID()); err != nil {
		return err
	}

	aggregate, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(), cmd.Details(),
		cmd.Weight(), cmd.Price(),
		cmd.Category(),
		cmd.OwnerID(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
