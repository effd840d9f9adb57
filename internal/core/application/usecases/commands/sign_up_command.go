package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrSignUpCommandIsNotConstructed = errors.New(
		"SignUpCommand must be created via NewSignUpCommand constructor",
	)
	ErrNameIsRequired       = errors.New("name is required")
	ErrEmailIsRequired      = errors.New("email is required")
	ErrCredentialIsRequired = errors.New("credential is required")
)

// SignUpCommand represents a request to register a new account under one
// of the marketplace roles. Role-specific attributes (address and phone for
// customers, salary and area for couriers, and so on) travel in the extras
// map and are interpreted by the role's constructor.
//
// Example:
//
//	cmd, err := NewSignUpCommand(kernel.NewUUID(), account.RoleCustomer,
//	    "Dana", "dana@example.com", "secret",
//	    map[string]any{"address": "5 Pine Street", "phone": "555-0134"})
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewSignUpCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type SignUpCommand struct { //nolint:recvcheck //using for validation
	accountID  kernel.UUID
	role       account.Role
	name       string
	email      string
	credential string
	extras     map[string]any

	guard guard.ConstructorGuard
}

// NewSignUpCommand creates a command to register a new account.
// Validates that the account ID and role are valid and that name, email,
// and credential are not empty. The extras map may be nil.
func NewSignUpCommand(
	accountID kernel.UUID,
	role account.Role,
	name, email, credential string,
	extras map[string]any,
) (SignUpCommand, error) {
	signUpCommand := SignUpCommand{
		extras: extras,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		signUpCommand.setAccountID(accountID),
		signUpCommand.setRole(role),
		signUpCommand.setName(name),
		signUpCommand.setEmail(email),
		signUpCommand.setCredential(credential),
	); err != nil {
		return SignUpCommand{}, err
	}

	return signUpCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSignUpCommandIsNotConstructed if validation fails.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c SignUpCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Role returns the role the account registers under.
func (c SignUpCommand) Role() account.Role {
	return c.role
}

// Name returns the display name of the new account.
func (c SignUpCommand) Name() string {
	return c.name
}

// Email returns the unique email address of the new account.
func (c SignUpCommand) Email() string {
	return c.email
}

// Credential returns the secret used for later authentication.
func (c SignUpCommand) Credential() string {
	return c.credential
}

// Extras returns the role-specific attributes supplied at registration.
func (c SignUpCommand) Extras() map[string]any {
	return c.extras
}

func (c *SignUpCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *SignUpCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *SignUpCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *SignUpCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *SignUpCommand) setCredential(credential string) error {
	if credential == "" {
		return ErrCredentialIsRequired
	}

	c.credential = credential
	return nil
}
