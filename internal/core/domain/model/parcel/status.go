package parcel

import (
	"fmt"
	"sort"

	"lastmile/internal/pkg/errs"
)

// Status represents the lifecycle state of a package.
// It implements a finite-state machine with defined transitions to ensure
// packages follow the correct operational workflow.
//
// State transitions:
//
//	received         -> in_warehouse | cancelled
//	in_warehouse     -> out_for_delivery | returned
//	out_for_delivery -> delivered | failed_attempt | returned
//	failed_attempt   -> out_for_delivery | returned   (retry loop)
//
// delivered, returned and cancelled are terminal: no outgoing transitions.
type Status string

const (
	// StatusReceived is the initial status when a package enters the system.
	StatusReceived Status = "received"

	// StatusInWarehouse indicates the package has been checked into a warehouse.
	StatusInWarehouse Status = "in_warehouse"

	// StatusOutForDelivery indicates the package left the warehouse with a driver.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered indicates a successful delivery. Terminal.
	StatusDelivered Status = "delivered"

	// StatusFailedAttempt indicates the last delivery attempt failed.
	// The package can be retried (back to out_for_delivery) or returned.
	StatusFailedAttempt Status = "failed_attempt"

	// StatusReturned indicates the package was sent back to origin. Terminal.
	StatusReturned Status = "returned"

	// StatusCancelled indicates the package was cancelled before warehouse
	// intake completed. Reachable only from received. Terminal.
	StatusCancelled Status = "cancelled"
)

// validNextStatuses returns the allowed-transition table of the package FSM:
// an explicit immutable mapping from each state to the set of states reachable
// from it. Terminal states map to the empty set.
func validNextStatuses() map[Status][]Status {
	return map[Status][]Status{
		StatusReceived:       {StatusInWarehouse, StatusCancelled},
		StatusInWarehouse:    {StatusOutForDelivery, StatusReturned},
		StatusOutForDelivery: {StatusDelivered, StatusFailedAttempt, StatusReturned},
		StatusFailedAttempt:  {StatusOutForDelivery, StatusReturned},
		StatusDelivered:      {},
		StatusReturned:       {},
		StatusCancelled:      {},
	}
}

// Validate checks that the Status value is one of the defined enum values.
// The empty string and any unknown value are invalid.
func (s Status) Validate() error {
	if _, ok := validNextStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid package status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(validNextStatuses()[s]) == 0 && s.Validate() == nil
}

// AllowedNext returns the sorted list of statuses reachable from s.
// Terminal and unknown statuses yield an empty slice.
func (s Status) AllowedNext() []string {
	next := validNextStatuses()[s]
	allowed := make([]string, 0, len(next))
	for _, status := range next {
		allowed = append(allowed, string(status))
	}
	sort.Strings(allowed)
	return allowed
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, status := range validNextStatuses()[s] {
		if status == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the move s -> target is allowed by the FSM.
// Otherwise it returns an InvalidTransitionError carrying the offending pair
// and the allowed alternatives; the caller must not persist anything in that
// case.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", errs.NewInvalidTransitionError(string(s), string(target), s.AllowedNext())
	}
	return target, nil
}
