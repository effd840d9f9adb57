package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// AssignCouriersCommandHandler handles the business logic for automatic
// courier assignment. Each active courier takes at most one order per
// run; orders left over wait for the next run.
type AssignCouriersCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.OrderDispatcher
}

// NewAssignCouriersCommandHandler creates a handler for assignment operations.
// Requires a DispatchUoWFactory for transactional persistence.
func NewAssignCouriersCommandHandler(uowFactory DispatchUoWFactory) AssignCouriersCommandHandler {
	return AssignCouriersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle processes the assignment command.
// Matches unclaimed pending orders with active couriers until either
// side runs out. A run with nothing to match succeeds without changes.
func (h *AssignCouriersCommandHandler) Handle(ctx context.Context, cmd AssignCouriersCommand) error {
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

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllUnclaimedPending(ctx)
	if err != nil {
		return err
	}

	couriers, err := uow.AccountRepository().GetAllActiveCouriers(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		if len(couriers) == 0 {
			break
		}

		assigned, err := h.dispatcher.Dispatch(aggregate, couriers)
		if err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		remaining := couriers[:0]
		for _, c := range couriers {
			if !c.ID().IsEqual(assigned.ID()) {
				remaining = append(remaining, c)
			}
		}
		couriers = remaining
	}

	return uow.Commit(ctx)
}
