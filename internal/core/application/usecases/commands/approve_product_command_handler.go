package commands

import (
	"context"
	"errors"

	"marketplace/internal/pkg/errs"
)

// ApproveProductCommandHandler handles the business logic for approval
// decisions on product listings. Only admins may decide; the admin store
// is probed to establish the capability.
type ApproveProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewApproveProductCommandHandler creates a handler for approval operations.
// Requires a CatalogUoWFactory for transactional persistence.
func NewApproveProductCommandHandler(uowFactory CatalogUoWFactory) ApproveProductCommandHandler {
	return ApproveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// Returns a forbidden error when the acting account is not an admin.
func (h *ApproveProductCommandHandler) Handle(ctx context.Context, cmd ApproveProductCommand) error {
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

	if _, err := uow.AccountRepository().GetAdmin(ctx, cmd.AdminID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewObjectForbiddenErrorWithCause("adminId", cmd.AdminID().String(), err)
		}
		return err
	}

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.SetAvailability(cmd.Decision()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
