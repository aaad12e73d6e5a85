package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/errs"
)

// RiderAssigner is the domain service that binds a rider to a ready order.
//
// Assignment rules:
//   - the assignee must hold the rider role
//   - a rider carries at most one delivery at a time, so assignment is
//     refused while any of the rider's orders is still delivering
//   - the order itself must accept the transition (ready to delivering)
type RiderAssigner struct{}

// NewRiderAssigner creates a new RiderAssigner instance.
func NewRiderAssigner() RiderAssigner {
	return RiderAssigner{}
}

// Assign binds the rider to the order and moves it to delivering.
// activeOrders is the rider's current delivery workload as loaded by the
// caller; any order still delivering makes the rider busy.
//
// Returns an InvalidRiderError when the principal is not a rider, a
// RiderBusyError when the rider already carries a delivery, and an
// InvalidTransitionError when the order is not ready.
func (a RiderAssigner) Assign(o *order.Order, rider *principal.Principal, activeOrders []*order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := rider.Validate(); err != nil {
		return err
	}

	if rider.Role() != principal.RoleRider {
		return errs.NewInvalidRiderErrorWithCause(rider.ID().String(),
			fmt.Errorf("principal role is %s", rider.Role()))
	}

	for _, active := range activeOrders {
		if err := active.Validate(); err != nil {
			return err
		}

		if active.Status() == order.Delivering {
			return errs.NewRiderBusyError(rider.ID().String(), active.ID().String())
		}
	}

	return o.AssignRider(rider.ID())
}
