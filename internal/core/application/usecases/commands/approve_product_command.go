package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/guard"
)

// ErrApproveProductCommandIsNotConstructed is returned when using an
// improperly initialized ApproveProductCommand.
var ErrApproveProductCommandIsNotConstructed = errors.New(
	"ApproveProductCommand must be created via NewApproveProductCommand constructor",
)

// ApproveProductCommand represents an admin's decision on a pending
// product listing. The decision is a catalog status: approved makes the
// product purchasable, rejected keeps it off the storefront.
type ApproveProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	adminID   kernel.UUID
	decision  product.Status

	guard guard.ConstructorGuard
}

// NewApproveProductCommand creates a command to record an approval decision.
// Validates that the identifiers and the decision status are valid.
func NewApproveProductCommand(productID, adminID kernel.UUID, decision product.Status) (ApproveProductCommand, error) {
	approveCommand := ApproveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approveCommand.setProductID(productID),
		approveCommand.setAdminID(adminID),
		approveCommand.setDecision(decision),
	); err != nil {
		return ApproveProductCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApproveProductCommandIsNotConstructed if validation fails.
func (c ApproveProductCommand) Validate() error {
	return c.guard.Validate(ErrApproveProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being decided on.
func (c ApproveProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// AdminID returns the identifier of the deciding admin.
func (c ApproveProductCommand) AdminID() kernel.UUID {
	return c.adminID
}

// Decision returns the catalog status to move the product to.
func (c ApproveProductCommand) Decision() product.Status {
	return c.decision
}

func (c *ApproveProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *ApproveProductCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *ApproveProductCommand) setDecision(decision product.Status) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
