package ports

import (
	"context"
)

// GeoPoint is a WGS84 coordinate pair resolved from a postal address.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a postcode to map coordinates. Used to annotate order
// listings with a delivery location pin; resolution failures degrade the
// annotation, never the listing.
type Geocoder interface {
	// Locate resolves a postcode to coordinates.
	Locate(ctx context.Context, postcode string) (GeoPoint, error)
}
