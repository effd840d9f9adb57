package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/basket"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AddToBasketCommandHandler handles the business logic for basket
// additions. Products that are not approved for sale are invisible to
// customers and therefore reported as not found.
type AddToBasketCommandHandler struct {
	uowFactory BasketUoWFactory
}

// NewAddToBasketCommandHandler creates a handler for basket addition operations.
// Requires a BasketUoWFactory for transactional persistence.
func NewAddToBasketCommandHandler(uowFactory BasketUoWFactory) AddToBasketCommandHandler {
	return AddToBasketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the basket addition command.
// Creates the customer's basket on first use if none exists yet.
// Adding a product already in the basket is a no-op.
func (h *AddToBasketCommandHandler) Handle(ctx context.Context, cmd AddToBasketCommand) error {
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

	member, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !member.IsAvailable() {
		return errs.NewObjectNotFoundError("productId", cmd.ProductID().String())
	}

	basketRepo := uow.BasketRepository()

	aggregate, created, err := h.getOrCreateBasket(ctx, basketRepo, cmd.CustomerID())
	if err != nil {
		return err
	}

	item, err := basket.NewItem(member.ID(), member.Price(), member.Weight())
	if err != nil {
		return err
	}

	if err = aggregate.AddProduct(item); err != nil {
		return err
	}

	if created {
		err = basketRepo.Add(ctx, aggregate)
	} else {
		err = basketRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// getOrCreateBasket loads the customer's basket, creating an empty one
// when the customer has none yet. The second return value reports whether
// the basket is new.
func (h *AddToBasketCommandHandler) getOrCreateBasket(
	ctx context.Context,
	basketRepo ports.BasketRepository,
	customerID kernel.UUID,
) (*basket.Basket, bool, error) {
	aggregate, err := basketRepo.GetByCustomer(ctx, customerID)
	if err == nil {
		return aggregate, false, nil
	}

	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	aggregate, err = basket.NewBasket(kernel.NewUUID(), customerID)
	if err != nil {
		return nil, false, err
	}

	return aggregate, true, nil
}
