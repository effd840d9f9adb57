package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

// ErrAssignCouriersCommandIsNotConstructed is returned when using an
// improperly initialized AssignCouriersCommand.
var ErrAssignCouriersCommandIsNotConstructed = errors.New(
	"AssignCouriersCommand must be created via NewAssignCouriersCommand constructor",
)

// AssignCouriersCommand represents a request to match active couriers
// with pending orders that no courier has claimed yet. Carries no
// parameters; the handler works off the current store state. Triggered
// periodically by the assignment job.
type AssignCouriersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewAssignCouriersCommand creates a command to run courier assignment.
func NewAssignCouriersCommand() (AssignCouriersCommand, error) {
	return AssignCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCouriersCommandIsNotConstructed if validation fails.
func (c AssignCouriersCommand) Validate() error {
	return c.guard.Validate(ErrAssignCouriersCommandIsNotConstructed)
}
