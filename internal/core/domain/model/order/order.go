package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrItemsAreRequired is returned when an order is placed with an empty cart.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrCreatedAtIsRequired is returned when an order carries no creation timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Order is the aggregate root of the food order lifecycle. It tracks one
// checkout from placement through preparation, rider assignment, and
// delivery.
//
// Order maintains these invariants:
//   - status transitions follow the directed graph defined on Status; the
//     rider decline edge is the only backward transition and the terminal
//     states absorb everything
//   - riderID is set if and only if status is delivering or order picked up
//   - items and total are immutable after creation, and the total equals the
//     sum of the line item subtotals
//   - notificationAcknowledged becomes true at most once, and only after the
//     order has been picked up
//
// All fields are private; state changes go through the transition methods,
// which delegate legality checks to the Status value object. The aggregate
// also remembers the status and rider it was loaded with (see
// PersistedStatus and PersistedRider) so the persistence layer can commit
// transitions conditionally and detect races between concurrent actors.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// restaurantID identifies the restaurant preparing the order
	restaurantID kernel.UUID

	// riderID is the assigned rider (nil unless delivering or picked up)
	riderID *kernel.UUID

	// items are the immutable order lines
	items []Item

	// total is the immutable order total computed at creation
	total kernel.Money

	// status is the current lifecycle state
	status Status

	// createdAt is the immutable placement timestamp
	createdAt time.Time

	// notificationAcknowledged records that the customer dismissed the
	// pickup notification
	notificationAcknowledged bool

	// persistedStatus and persistedRider are the status and rider binding
	// the aggregate was loaded or created with; the repository uses the
	// pair as the compare-and-set precondition
	persistedStatus Status
	persistedRider  *kernel.UUID

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed order in pending status with no rider
// and an unacknowledged notification flag. The total is computed from the
// item subtotals; callers never supply it.
//
// Returns a ValueIsRequiredError when items is empty and propagates item
// validation errors otherwise.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:          Pending,
		persistedStatus: Pending,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence. It
// re-validates the stored state, including the rider/status consistency
// rule, and records the loaded status as the compare-and-set precondition
// for the next update.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	riderID *kernel.UUID,
	items []Item,
	total kernel.Money,
	status Status,
	createdAt time.Time,
	notificationAcknowledged bool,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setCreatedAt(createdAt),
		status.Validate(),
		status.ValidateCanHaveRider(riderID != nil),
	); err != nil {
		return nil, err
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
	}

	if notificationAcknowledged && status != PickedUp {
		return nil, errs.NewValueIsInvalidError("notificationAcknowledged")
	}

	// The stored total must still match the line items it was computed from.
	if !o.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidError("total")
	}

	o.riderID = riderID
	o.total = total
	o.status = status
	o.persistedStatus = status
	o.persistedRider = riderID
	o.notificationAcknowledged = notificationAcknowledged
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the id of the customer who placed the order.
func (o *Order) Customer() kernel.UUID {
	return o.customerID
}

// Restaurant returns the id of the restaurant preparing the order.
func (o *Order) Restaurant() kernel.UUID {
	return o.restaurantID
}

// Rider returns the assigned rider's id, or nil if no rider is bound.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// Items returns the immutable order lines.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the order total computed at creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// NotificationAcknowledged reports whether the customer has dismissed the
// pickup notification.
func (o *Order) NotificationAcknowledged() bool {
	return o.notificationAcknowledged
}

// PersistedStatus returns the status this aggregate was loaded or created
// with. Repositories use it as the expected prior state when committing a
// transition: if the stored status has moved on, the write is rejected with
// a StaleStateError instead of silently overwriting a concurrent actor.
func (o *Order) PersistedStatus() Status {
	return o.persistedStatus
}

// PersistedRider returns the rider binding this aggregate was loaded or
// created with, or nil. It completes the compare-and-set precondition: a
// status check alone cannot tell a delivering order apart from the same
// order declined and reassigned to another rider in the meantime.
func (o *Order) PersistedRider() *kernel.UUID {
	return o.persistedRider
}

// Advance moves the order to the next preparation status (making or ready).
// Legality is enforced by Status.Advance.
func (o *Order) Advance(target Status) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignRider binds a rider to a ready order and moves it to delivering.
// The rider id must be valid; role and availability checks belong to the
// RiderAssigner domain service.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AssignRider()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// AcceptPickup marks a delivering order as picked up by its rider. This is
// the terminal success transition and the notification milestone.
func (o *Order) AcceptPickup() error {
	newStatus, err := o.status.AcceptPickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// DeclinePickup returns a delivering order to ready and clears the rider
// binding, making the order available for reassignment to any rider,
// including the one who declined.
func (o *Order) DeclinePickup() error {
	newStatus, err := o.status.DeclinePickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = nil
	return nil
}

// Cancel moves the order to the terminal cancelled status. Legal from
// pending, making, and ready; who may cancel is decided by the caller.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AcknowledgePickup records that the customer dismissed the pickup
// notification. Idempotent: acknowledging an already-acknowledged order is
// a no-op. Acknowledging an order that has not been picked up is rejected,
// preserving the invariant that the flag only turns true after pickup.
func (o *Order) AcknowledgePickup() error {
	if o.notificationAcknowledged {
		return nil
	}

	if o.status != PickedUp {
		return errs.NewInvalidTransitionError(o.status.String(), "acknowledged")
	}

	o.notificationAcknowledged = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	total := kernel.Money{}
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return err
		}
		total = total.Add(subtotal)
	}

	o.items = items
	o.total = total
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}
