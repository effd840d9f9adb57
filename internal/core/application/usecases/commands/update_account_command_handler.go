package commands

import (
	"context"
)

// UpdateAccountCommandHandler handles the business logic for account updates.
// Resolves the account's role by probing the stores, applies the partial
// update, and persists the result.
type UpdateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateAccountCommandHandler creates a handler for account update operations.
// Requires an AccountUoWFactory for transactional persistence.
func NewUpdateAccountCommandHandler(uowFactory AccountUoWFactory) UpdateAccountCommandHandler {
	return UpdateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account update command.
// Returns a not-found error when no account of any role has the given ID.
func (h *UpdateAccountCommandHandler) Handle(ctx context.Context, cmd UpdateAccountCommand) error {
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

	accountRepo := uow.AccountRepository()

	aggregate, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	aggregate.ApplyUpdate(cmd.Fields())

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
