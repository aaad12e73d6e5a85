package orderrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a freshly placed order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update commits a status transition conditionally: the row is only written
// if its stored status and rider binding still equal the ones the aggregate
// was loaded with. The rider is part of the precondition because the status
// alone cannot distinguish a delivering order from one that was declined and
// handed to another rider in between. Zero affected rows means another actor
// moved the order first, which surfaces as a StaleStateError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var persistedRider any
	if id := aggregate.PersistedRider(); id != nil {
		persistedRider = id.Bytes()
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND rider_id IS NOT DISTINCT FROM ?",
			dto.ID, int(aggregate.PersistedStatus()), persistedRider).
		Updates(map[string]any{
			"rider_id":                  dto.RiderID,
			"status":                    dto.Status,
			"notification_acknowledged": dto.NotificationAcknowledged,
		})
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewStaleStateError(aggregate.ID().String(), aggregate.PersistedStatus().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get order", err)
	}

	return toDomain(dto)
}

// GetByCustomer retrieves all orders placed by a customer, newest first.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "created_at DESC", "customer_id = ?", customerID.Bytes())
}

// GetByRestaurant retrieves all orders of a restaurant, newest first.
func (r *GormOrderRepository) GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "created_at DESC", "restaurant_id = ?", restaurantID.Bytes())
}

// GetActiveByRider retrieves the rider's orders still out for delivery.
func (r *GormOrderRepository) GetActiveByRider(ctx context.Context, riderID kernel.UUID) ([]*order.Order, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "created_at ASC",
		"rider_id = ? AND status = ?", riderID.Bytes(), int(order.Delivering))
}

// GetUnacknowledgedPickedUp retrieves a customer's picked up orders whose
// pickup notification has not been acknowledged, oldest first. The watcher
// relies on the ordering to raise notifications one at a time in pickup
// order.
func (r *GormOrderRepository) GetUnacknowledgedPickedUp(
	ctx context.Context, customerID kernel.UUID,
) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "created_at ASC",
		"customer_id = ? AND status = ? AND notification_acknowledged = ?",
		customerID.Bytes(), int(order.PickedUp), false)
}

func (r *GormOrderRepository) find(
	ctx context.Context, ordering string, query string, args ...any,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Order(ordering).Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("find orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
