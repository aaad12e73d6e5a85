package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
)

// PrincipalRepository defines the persistence contract for principals
// (customers, managers, riders, admins).
type PrincipalRepository interface {
	// Get retrieves a principal by its unique identifier.
	// Returns an ObjectNotFoundError when no such principal exists.
	Get(ctx context.Context, id kernel.UUID) (*principal.Principal, error)

	// GetAllRiders retrieves every principal holding the rider role.
	GetAllRiders(ctx context.Context) ([]*principal.Principal, error)
}
