// Package geo resolves postal codes to map coordinates through the Google
// Maps Geocoding API.
package geo

import (
	"context"
	"fmt"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"googlemaps.github.io/maps"
)

// GoogleGeocoder implements the Geocoder port with the Google Maps client.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a geocoder using the given API key.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

// Locate resolves a postcode to WGS84 coordinates. An empty result set
// means the postcode is unknown to the API.
func (g *GoogleGeocoder) Locate(ctx context.Context, postcode string) (ports.GeoPoint, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: postcode,
	})
	if err != nil {
		return ports.GeoPoint{}, fmt.Errorf("geocode %q: %w", postcode, err)
	}

	if len(results) == 0 {
		return ports.GeoPoint{}, errs.NewObjectNotFoundError("postcode", postcode)
	}

	location := results[0].Geometry.Location
	return ports.GeoPoint{
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}, nil
}
