package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Created ──┬──> Preparing ──┐
//	          │                ├──> OnTheWay ──> Delivered
//	          └──> Pending ────┘
//
// Cancelled is reachable from any non-terminal state.
// Delivered and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the earliest lifecycle state, used when an order
	// is registered but not yet queued for fulfillment.
	StatusCreated

	// StatusPreparing indicates the offeror is preparing the order.
	StatusPreparing

	// StatusPending is the default state of a newly placed order,
	// waiting for a courier to claim it.
	StatusPending

	// StatusOnTheWay indicates a courier is delivering the order.
	StatusOnTheWay

	// StatusDelivered indicates successful delivery. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was abandoned. Terminal.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusCreated:   "created",
		StatusPreparing: "preparing",
		StatusPending:   "pending",
		StatusOnTheWay:  "on-the-way",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:   "created",
		StatusPreparing: "preparing",
		StatusPending:   "pending",
		StatusOnTheWay:  "on-the-way",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// getTransitions returns the allowed next states for each status.
// Cancellation is handled separately: it is allowed from any non-terminal state.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusCreated:   {StatusPreparing, StatusPending},
		StatusPreparing: {StatusOnTheWay},
		StatusPending:   {StatusOnTheWay},
		StatusOnTheWay:  {StatusDelivered},
	}
}

// StatusFromString parses the wire representation of an order status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle transition.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusCancelled {
		return !s.IsTerminal()
	}
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition from s to next.
//
// Returns:
//   - (next, nil) on a legal transition
//   - (0, error) if next is invalid or the transition is not allowed
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot transition from %s to %s", s, next))
	}

	return next, nil
}
