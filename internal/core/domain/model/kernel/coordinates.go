package kernel

import (
	"parceltrack/internal/pkg/errs"
)

// Geographic bounds for WGS84 coordinates.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrCoordinatesAreNotConstructed indicates that a Coordinates value was not
// created via NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError("Coordinates must be created via NewCoordinates")

// Coordinates is a value object representing a validated geographic position.
// Latitude is constrained to [-90, 90] and longitude to [-180, 180].
//
// The zero value is invalid; use NewCoordinates. Coordinates is immutable and
// safe for concurrent use.
type Coordinates struct {
	latitude  float64
	longitude float64

	isConstructed bool
}

// NewCoordinates creates a Coordinates value after range-checking both
// components. Returns a ValueIsOutOfRangeError for components outside the
// WGS84 bounds.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	if longitude < MinLongitude || longitude > MaxLongitude {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	return Coordinates{
		latitude:      latitude,
		longitude:     longitude,
		isConstructed: true,
	}, nil
}

// Latitude returns the latitude component in decimal degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude component in decimal degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// IsEqual compares two coordinate pairs by value.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// Validate checks that the value was created via NewCoordinates.
func (c Coordinates) Validate() error {
	if !c.isConstructed {
		return ErrCoordinatesAreNotConstructed
	}
	return nil
}
