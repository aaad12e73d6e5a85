// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Line items are denormalized into a JSON column: they are
// immutable after placement and always loaded with the order, so a separate
// table buys nothing.
type OrderDTO struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID               uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID             uuid.UUID  `gorm:"type:uuid;index"`
	RiderID                  *uuid.UUID `gorm:"type:uuid;index"`
	Items                    []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	TotalCents               int64
	Status                   int `gorm:"index"`
	CreatedAt                time.Time
	NotificationAcknowledged bool
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line inside the JSON items column.
type ItemDTO struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			MenuItemID:     item.MenuItemID(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
		})
	}

	return OrderDTO{
		ID:                       aggregate.ID().Bytes(),
		CustomerID:               aggregate.Customer().Bytes(),
		RestaurantID:             aggregate.Restaurant().Bytes(),
		RiderID:                  riderID,
		Items:                    items,
		TotalCents:               aggregate.Total().Cents(),
		Status:                   int(aggregate.Status()),
		CreatedAt:                aggregate.CreatedAt(),
		NotificationAcknowledged: aggregate.NotificationAcknowledged(),
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder,
// which re-validates the stored state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemDTO.MenuItemID, itemDTO.Name, price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		riderID,
		items,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.NotificationAcknowledged,
	)
}
