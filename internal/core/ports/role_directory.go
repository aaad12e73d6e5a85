package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
)

// RoleDirectory resolves an authenticated identity to its Principal: role,
// profile address, and, for managers, the owned restaurant.
//
// The HTTP layer resolves every request through the directory before any
// handler runs, so the core always receives a fully resolved principal. A
// caching decorator may sit in front of the persistent implementation.
type RoleDirectory interface {
	// Resolve looks up the principal for an identity.
	// Returns an ObjectNotFoundError for unknown identities.
	Resolve(ctx context.Context, id kernel.UUID) (*principal.Principal, error)
}
