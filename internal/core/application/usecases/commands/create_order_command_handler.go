package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for direct order
// placement. Each member of the selection is resolved against the catalog
// so the order records the price and weight at purchase time.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderingUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Unapproved products are invisible to purchasers and reported as not
// found. The new order starts in pending status with no courier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	items := make([]order.Item, 0, len(cmd.ProductIDs()))
	for _, productID := range cmd.ProductIDs() {
		member, err := productRepo.Get(ctx, productID)
		if err != nil {
			return err
		}

		if !member.IsAvailable() {
			return errs.NewObjectNotFoundError("productId", productID.String())
		}

		item, err := order.NewItem(member.ID(), member.Price(), member.Weight())
		if err != nil {
			return err
		}

		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.PurchaserID(),
		items,
		cmd.PickupAddress(), cmd.DeliveryAddress(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
