package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/basket"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// SignUpCommandHandler handles the business logic for account registration.
// Enforces that the email is not already taken by an account of any role,
// builds the role-specific aggregate, and creates the customer's basket.
//
// Example:
//
//	handler := NewSignUpCommandHandler(uowFactory)
//	cmd, _ := NewSignUpCommand(kernel.NewUUID(), account.RoleCourier,
//	    "Max", "max@example.com", "secret",
//	    map[string]any{"status": "active", "salary": 2500.0, "area": "north"})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type SignUpCommandHandler struct {
	uowFactory SignUpUoWFactory
}

// NewSignUpCommandHandler creates a handler for registration operations.
// Requires a SignUpUoWFactory for transactional persistence.
func NewSignUpCommandHandler(uowFactory SignUpUoWFactory) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Fails with a conflict error when the email is already registered under
// any role. For customers, an empty basket is created in the same
// transaction.
func (h *SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) error {
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

	if _, err := accountRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewConflictError("email")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := buildAccount(cmd)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Role() == account.RoleCustomer {
		customerBasket, err := basket.NewBasket(kernel.NewUUID(), cmd.AccountID())
		if err != nil {
			return err
		}

		if err = uow.BasketRepository().Add(ctx, customerBasket); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// buildAccount constructs the role-specific aggregate from the command.
func buildAccount(cmd SignUpCommand) (account.Account, error) {
	switch cmd.Role() {
	case account.RoleCustomer:
		return account.NewCustomer(
			cmd.AccountID(), cmd.Name(), cmd.Email(), cmd.Credential(),
			extraString(cmd.Extras(), "address"),
			extraString(cmd.Extras(), "phone"),
		)
	case account.RoleAdmin:
		return account.NewAdmin(
			cmd.AccountID(), cmd.Name(), cmd.Email(), cmd.Credential(),
			extraString(cmd.Extras(), "status"),
		)
	case account.RoleCourier:
		return account.NewCourier(
			cmd.AccountID(), cmd.Name(), cmd.Email(), cmd.Credential(),
			extraString(cmd.Extras(), "status"),
			extraFloat(cmd.Extras(), "salary"),
			extraString(cmd.Extras(), "area"),
		)
	case account.RoleServiceOfferor:
		return account.NewServiceOfferor(
			cmd.AccountID(), cmd.Name(), cmd.Email(), cmd.Credential(),
			extraString(cmd.Extras(), "service_type"),
			extraString(cmd.Extras(), "area"),
		)
	default:
		return nil, errs.NewValueIsInvalidError("role")
	}
}

func extraString(extras map[string]any, key string) string {
	if value, ok := extras[key].(string); ok {
		return value
	}
	return ""
}

func extraFloat(extras map[string]any, key string) float64 {
	switch value := extras[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	default:
		return 0
	}
}
