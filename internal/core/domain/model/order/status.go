package order

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct shipping workflow.
//
// State transitions:
//
//	Pending ──┬──> In Transit ──┬──> Delivered
//	          │                 │
//	          ├──> Delivered    └──> Canceled
//	          │   (express)
//	          └──> Canceled
//
// Delivered and Canceled are terminal: no outgoing transitions exist
// from either state.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be picked up.
	Pending

	// InTransit indicates the package has been picked up and is on
	// its way to the destination.
	InTransit

	// Delivered indicates the package reached the recipient.
	// This is a final state with no further transitions allowed.
	Delivered

	// Canceled indicates the order was canceled.
	// This is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string
// representations. The strings are part of the API and storage contract:
// exact casing and spacing must be preserved.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// getValidTransitions returns the transition table as data. Keys are source
// statuses, values the set of statuses reachable from them. Terminal statuses
// map to an empty list.
func getValidTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {InTransit, Delivered, Canceled},
		InTransit: {Delivered, Canceled},
		Delivered: {},
		Canceled:  {},
	}
}

// InvalidTransitionError reports a rejected status transition. It carries
// both the current and the requested status so callers can name the illegal
// pair to their own clients.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// status pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// StatusFromString parses a status from its canonical string representation.
// Accepted values are exactly "Pending", "In Transit", "Delivered", and
// "Canceled" (exact casing and spacing).
//
// Returns:
//   - the parsed status and nil on success
//   - (Unknown, error) if the string does not name a valid status
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, In Transit, Delivered, Canceled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Pending", "In Transit", "Delivered", or "Canceled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered and Canceled are terminal.
func (s Status) IsTerminal() bool {
	targets, ok := getValidTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether a transition from the current status to the
// requested one is legal per the transition table.
//
// The function is pure and total over the Status domain:
//   - false when requested equals the current status (a no-op is never a
//     valid change)
//   - false when the current status is terminal
//   - false for Unknown or out-of-range values on either side
func (s Status) CanTransitionTo(requested Status) bool {
	if s == requested {
		return false
	}

	for _, allowed := range getValidTransitions()[s] {
		if allowed == requested {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition to the requested status.
//
// Returns:
//   - (requested, nil) on a legal transition
//   - (0, *InvalidTransitionError) naming both statuses on an illegal one
//
// This method is used by Order.ChangeStatus to enforce state transitions.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(requested) {
		return 0, NewInvalidTransitionError(s, requested)
	}

	return requested, nil
}

// Cancel transitions the status to Canceled through the dedicated
// cancellation operation.
//
// Cancellation is deliberately narrower than the general transition table:
// only Pending orders may be canceled this way, while an ordinary status
// update still permits In Transit -> Canceled. The asymmetry mirrors the
// business rule that a shipment already on the road is canceled by the
// carrier, not by the customer-facing cancel operation.
//
// Returns:
//   - (Canceled, nil) when the current status is Pending
//   - (0, *InvalidTransitionError) otherwise
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, NewInvalidTransitionError(s, Canceled)
	}

	return Canceled, nil
}
