package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so that orders follow the workflow:
//
//	pending ──> making ──> ready ──> delivering ──> order picked up
//	   │           │         ▲  │
//	   │           │         │  └──(rider declines)
//	   ▼           ▼         ▼
//	cancelled  cancelled  cancelled
//
// "order picked up" and "cancelled" are terminal: no transition leaves them.
// The only backward edge is the explicit rider decline, which returns a
// delivering order to ready and unassigns the rider.
//
// Status is a value object: transition methods return the next status and
// never mutate the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	Pending

	// Making indicates the restaurant has started preparing the order.
	Making

	// Ready indicates preparation is finished and the order awaits a rider.
	Ready

	// Delivering indicates a rider has been assigned to the order.
	Delivering

	// PickedUp indicates the rider has collected the order. This is the
	// terminal success state and the milestone that triggers the customer
	// notification.
	PickedUp

	// Cancelled is the terminal failure state, reachable from pending,
	// making, and ready.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Making:     "making",
		Ready:      "ready",
		Delivering: "delivering",
		PickedUp:   "order picked up",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Making:     "making",
		Ready:      "ready",
		Delivering: "delivering",
		PickedUp:   "order picked up",
		Cancelled:  "cancelled",
	}
}

// StatusFromString resolves a stored or wire status name to a Status value.
// Returns an error for names outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value belongs to the valid set.
// Used on values arriving from persistence or external callers.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "making", "ready",
// "delivering", "order picked up", "cancelled"). Implements fmt.Stringer and
// is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == PickedUp || s == Cancelled
}

// IsActiveDelivery reports whether the order is bound to a rider: the two
// statuses during which riderID must be set.
func (s Status) IsActiveDelivery() bool {
	return s == Delivering || s == PickedUp
}

// Advance transitions to the next preparation status.
//
// Valid transitions:
//   - Pending -> Making
//   - Making -> Ready
//
// Any other target, including skipping a state, returns an
// InvalidTransitionError. Rider-related transitions have their own methods;
// cancellation goes through Cancel.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if (s == Pending && target == Making) || (s == Making && target == Ready) {
		return target, nil
	}

	return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
}

// AssignRider transitions Ready -> Delivering. Assignment from any other
// status returns an InvalidTransitionError.
func (s Status) AssignRider() (Status, error) {
	if s != Ready {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Delivering.String())
	}
	return Delivering, nil
}

// AcceptPickup transitions Delivering -> PickedUp.
func (s Status) AcceptPickup() (Status, error) {
	if s != Delivering {
		return Unknown, errs.NewInvalidTransitionError(s.String(), PickedUp.String())
	}
	return PickedUp, nil
}

// DeclinePickup transitions Delivering -> Ready. This is the only backward
// edge in the lifecycle; the caller clears the rider binding alongside it.
func (s Status) DeclinePickup() (Status, error) {
	if s != Delivering {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Ready.String())
	}
	return Ready, nil
}

// Cancel transitions Pending, Making, or Ready -> Cancelled. Orders already
// out for delivery cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Making && s != Ready {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment: a rider is bound if and only if the order is in
// delivering or picked-up status.
func (s Status) ValidateCanHaveRider(hasRider bool) error {
	if hasRider && !s.IsActiveDelivery() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a rider", s))
	}

	if !hasRider && s.IsActiveDelivery() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no rider", s))
	}

	return nil
}
