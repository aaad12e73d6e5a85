package principalrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPrincipalRepository implements PrincipalRepository using GORM. It also
// serves as the persistent RoleDirectory: Resolve is a lookup by id.
type GormPrincipalRepository struct {
	db *gorm.DB
}

// NewGormPrincipalRepository creates a new GORM principal repository.
func NewGormPrincipalRepository(db *gorm.DB) *GormPrincipalRepository {
	return &GormPrincipalRepository{db: db}
}

// Get retrieves a principal by ID.
func (r *GormPrincipalRepository) Get(ctx context.Context, id kernel.UUID) (*principal.Principal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrincipalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("principal", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get principal", err)
	}

	return toDomain(dto)
}

// Resolve implements the RoleDirectory port.
func (r *GormPrincipalRepository) Resolve(ctx context.Context, id kernel.UUID) (*principal.Principal, error) {
	return r.Get(ctx, id)
}

// GetAllRiders retrieves every principal holding the rider role.
func (r *GormPrincipalRepository) GetAllRiders(ctx context.Context) ([]*principal.Principal, error) {
	var dtos []PrincipalDTO
	if err := r.db.WithContext(ctx).
		Where("role = ?", principal.RoleRider.String()).
		Order("name ASC").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("get riders", err)
	}

	riders := make([]*principal.Principal, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, p)
	}

	return riders, nil
}
