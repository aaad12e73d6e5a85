// Package rolecache caches resolved principals in Redis in front of the
// persistent role directory. Role lookups run on every request, while roles
// and restaurant bindings change rarely, so a short TTL takes most of the
// read load off the store.
package rolecache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "principal:"

// cachedPrincipal is the JSON shape stored per principal.
type cachedPrincipal struct {
	ID           string        `json:"id"`
	Role         string        `json:"role"`
	Name         string        `json:"name"`
	Address      cachedAddress `json:"address"`
	RestaurantID *string       `json:"restaurant_id,omitempty"`
}

type cachedAddress struct {
	FirstLine  string `json:"first_line"`
	SecondLine string `json:"second_line"`
	City       string `json:"city"`
	County     string `json:"county"`
	Postcode   string `json:"postcode"`
	Country    string `json:"country"`
}

// CachedRoleDirectory decorates a RoleDirectory with a Redis cache.
//
// The cache fails open: any Redis error falls through to the wrapped
// directory, so an unavailable cache degrades latency, never correctness.
type CachedRoleDirectory struct {
	client *redis.Client
	next   ports.RoleDirectory
	ttl    time.Duration
}

// NewCachedRoleDirectory wraps a role directory with a Redis cache. Entries
// expire after ttl.
func NewCachedRoleDirectory(client *redis.Client, next ports.RoleDirectory, ttl time.Duration) *CachedRoleDirectory {
	return &CachedRoleDirectory{client: client, next: next, ttl: ttl}
}

// Resolve returns the cached principal when present, otherwise resolves
// through the wrapped directory and stores the result.
func (d *CachedRoleDirectory) Resolve(ctx context.Context, id kernel.UUID) (*principal.Principal, error) {
	key := keyPrefix + id.String()

	raw, err := d.client.Get(ctx, key).Bytes()
	if err == nil {
		p, decodeErr := decode(raw)
		if decodeErr == nil {
			return p, nil
		}
		slog.Warn("failed to decode cached principal",
			"component", "rolecache",
			"principal_id", id.String(),
			"error", decodeErr)
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("role cache read failed",
			"component", "rolecache",
			"principal_id", id.String(),
			"error", err)
	}

	p, err := d.next.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	d.store(ctx, key, p)
	return p, nil
}

func (d *CachedRoleDirectory) store(ctx context.Context, key string, p *principal.Principal) {
	raw, err := json.Marshal(encode(p))
	if err != nil {
		return
	}

	if err := d.client.Set(ctx, key, raw, d.ttl).Err(); err != nil {
		slog.Warn("role cache write failed",
			"component", "rolecache",
			"error", err)
	}
}

func encode(p *principal.Principal) cachedPrincipal {
	address := p.Address()
	cached := cachedPrincipal{
		ID:   p.ID().String(),
		Role: p.Role().String(),
		Name: p.Name(),
		Address: cachedAddress{
			FirstLine:  address.FirstLine,
			SecondLine: address.SecondLine,
			City:       address.City,
			County:     address.County,
			Postcode:   address.Postcode,
			Country:    address.Country,
		},
	}

	if p.Restaurant() != nil {
		restaurantID := p.Restaurant().String()
		cached.RestaurantID = &restaurantID
	}

	return cached
}

func decode(raw []byte) (*principal.Principal, error) {
	var cached cachedPrincipal
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromString(cached.ID)
	if err != nil {
		return nil, err
	}

	role, err := principal.RoleFromString(cached.Role)
	if err != nil {
		return nil, err
	}

	p, err := principal.NewPrincipal(id, role, cached.Name)
	if err != nil {
		return nil, err
	}

	p = p.WithAddress(principal.Address{
		FirstLine:  cached.Address.FirstLine,
		SecondLine: cached.Address.SecondLine,
		City:       cached.Address.City,
		County:     cached.Address.County,
		Postcode:   cached.Address.Postcode,
		Country:    cached.Address.Country,
	})

	if cached.RestaurantID != nil {
		restaurantID, restErr := kernel.UUIDFromString(*cached.RestaurantID)
		if restErr != nil {
			return nil, restErr
		}
		p = p.WithRestaurant(restaurantID)
	}

	return p, nil
}
