// Package restaurantrepo persists the restaurant read model: identity,
// manager binding, menu, and opening hours.
package restaurantrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants. The menu
// is a JSON column for the same reason order items are: always read whole,
// never queried by line.
type RestaurantDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ManagerID   uuid.UUID     `gorm:"type:uuid;index"`
	Name        string
	Menu        []MenuItemDTO `gorm:"serializer:json;type:jsonb"`
	OpeningHour int
	ClosingHour int
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is one dish definition inside the JSON menu column.
type MenuItemDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// toDomain converts a database row to a Restaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	managerID, err := kernel.UUIDFromBytes(dto.ManagerID[:])
	if err != nil {
		return nil, err
	}

	menu := make([]restaurant.MenuItem, 0, len(dto.Menu))
	for _, itemDTO := range dto.Menu {
		price, priceErr := kernel.NewMoney(itemDTO.PriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		menu = append(menu, restaurant.MenuItem{
			ID:    itemDTO.ID,
			Name:  itemDTO.Name,
			Price: price,
		})
	}

	return restaurant.NewRestaurant(id, managerID, dto.Name, menu, dto.OpeningHour, dto.ClosingHour)
}
