package queries_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"

	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), principal.RoleCustomer, "Alice")
	require.NoError(t, err)
	return p.WithAddress(principal.Address{
		FirstLine: "1 High Street",
		City:      "London",
		Postcode:  "SW1A 1AA",
		Country:   "GB",
	})
}

func newManager(t *testing.T, restaurantID kernel.UUID) *principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), principal.RoleManager, "Bob")
	require.NoError(t, err)
	return p.WithRestaurant(restaurantID)
}

func newRider(t *testing.T) *principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), principal.RoleRider, "Carol")
	require.NoError(t, err)
	return p
}
