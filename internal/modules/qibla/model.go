// README: Qibla value types, the Kaaba constant and validation errors.
package qibla

import (
	"errors"
	"fmt"
	"math"

	"ibadah/internal/types"
)

// GeoCoordinate is a position in decimal degrees. Latitude must lie in
// [-90, 90] and longitude in [-180, 180].
type GeoCoordinate = types.Point

// Kaaba is the fixed target of every Qibla computation.
var Kaaba = GeoCoordinate{Lat: 21.4225, Lng: 39.8262}

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// BearingResult is the initial compass bearing, clockwise from true north,
// always in [0, 360).
type BearingResult struct {
	BearingDegrees float64 `json:"bearing_degrees"`
}

// DistanceResult is a great-circle distance on a sphere of radius 6371 km.
type DistanceResult struct {
	Kilometers float64 `json:"kilometers"`
}

// Direction bundles everything the client needs to render the compass.
type Direction struct {
	Source   GeoCoordinate  `json:"source"`
	Bearing  BearingResult  `json:"bearing"`
	Distance DistanceResult `json:"distance"`
	City     string         `json:"city,omitempty"`
}

// ValidateCoordinate reports ErrInvalidCoordinate for NaN or out-of-range
// latitude/longitude values.
func ValidateCoordinate(c GeoCoordinate) error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidCoordinate, c.Lat)
	}
	if math.IsNaN(c.Lng) || c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidCoordinate, c.Lng)
	}
	return nil
}
