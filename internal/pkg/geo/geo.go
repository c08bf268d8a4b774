// Package geo holds pure geodesic helpers used by the matching pipeline.
package geo

import (
	"math"

	"github.com/cropool/backend/internal/pkg/models"
)

// EarthRadiusM is the mean Earth radius in meters
const EarthRadiusM = 6371000.0

// DegToRad converts decimal degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// DistanceMeters returns the great-circle (haversine) distance between two
// points in meters. Deterministic, no failure mode; out-of-range inputs are
// the caller's responsibility.
func DistanceMeters(a, b models.Coordinate) float64 {
	dLat := DegToRad(b.Latitude - a.Latitude)
	dLon := DegToRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(DegToRad(a.Latitude))*math.Cos(DegToRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusM * c
}
