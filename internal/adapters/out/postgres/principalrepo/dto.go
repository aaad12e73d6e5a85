// Package principalrepo persists principals: customers, managers, riders,
// and admins, with their role, profile address, and restaurant binding.
package principalrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"

	"github.com/google/uuid"
)

// PrincipalDTO represents the database structure for principals.
type PrincipalDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Role         string     `gorm:"index"`
	Name         string
	Address      AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	RestaurantID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for principals.
func (PrincipalDTO) TableName() string {
	return "principals"
}

// AddressDTO is the embedded profile delivery address.
type AddressDTO struct {
	FirstLine  string
	SecondLine string
	City       string
	County     string
	Postcode   string
	Country    string
}

// toDomain converts a database row to a Principal.
func toDomain(dto PrincipalDTO) (*principal.Principal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := principal.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	p, err := principal.NewPrincipal(id, role, dto.Name)
	if err != nil {
		return nil, err
	}

	p = p.WithAddress(principal.Address{
		FirstLine:  dto.Address.FirstLine,
		SecondLine: dto.Address.SecondLine,
		City:       dto.Address.City,
		County:     dto.Address.County,
		Postcode:   dto.Address.Postcode,
		Country:    dto.Address.Country,
	})

	if dto.RestaurantID != nil {
		restaurantID, restErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restErr != nil {
			return nil, restErr
		}
		p = p.WithRestaurant(restaurantID)
	}

	return p, nil
}
