package kernel

import (
	"errors"
	"fmt"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

const (
	// GeoMinLatitude is the minimum valid latitude in decimal degrees.
	GeoMinLatitude = -90.0
	// GeoMaxLatitude is the maximum valid latitude in decimal degrees.
	GeoMaxLatitude = 90.0
	// GeoMinLongitude is the minimum valid longitude in decimal degrees.
	GeoMinLongitude = -180.0
	// GeoMaxLongitude is the maximum valid longitude in decimal degrees.
	GeoMaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint so that both
// coordinates are always present and within bounds. A delivery confirmation
// without GPS evidence is rejected at construction time, not downstream.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a WGS84 coordinate pair captured in the field: a package
// destination, a proof-of-delivery location, or a driver's last known position.
// It is an immutable value object; the zero value is invalid and fails Validate.
//
// Example:
//
//	gps, err := kernel.NewGeoPoint(25.77, -80.19)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("captured at %s", gps) // Output: captured at (25.770000,-80.190000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in decimal degrees.
// Latitude must lie in [-90, 90] and longitude in [-180, 180]; out-of-range
// values return a ValueIsOutOfRangeError.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// IsEqual compares two geo points by both coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%f,%f)", p.lat, p.lon)
}

// Validate ensures the GeoPoint was created through NewGeoPoint.
// Returns ErrGeoPointIsNotConstructed for zero-value instances.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoMinLatitude || lat > GeoMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoMinLatitude, GeoMaxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if lon < GeoMinLongitude || lon > GeoMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lon, GeoMinLongitude, GeoMaxLongitude)
	}
	p.lon = lon
	return nil
}
