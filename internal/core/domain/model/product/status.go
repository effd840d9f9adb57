package product

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the availability state of a catalog entry.
// Unlike the order lifecycle, catalog status carries no transition table:
// SetAvailability accepts any valid status from any other. Only Approved
// products are purchasable.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly published product,
	// awaiting admin approval.
	StatusPending

	// StatusApproved marks the product as purchasable.
	StatusApproved

	// StatusRejected marks the product as declined by an admin.
	StatusRejected

	// StatusWithdrawn marks the product as pulled by its owner.
	StatusWithdrawn
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusApproved:  "approved",
		StatusRejected:  "rejected",
		StatusWithdrawn: "withdrawn",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusApproved:  "approved",
		StatusRejected:  "rejected",
		StatusWithdrawn: "withdrawn",
	}
}

// StatusFromString parses the wire representation of a product status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid product status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: pending, approved, rejected, withdrawn.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid product status", s))
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
