package routes

import (
	"context"

	"github.com/cropool/backend/internal/pkg/models"
)

// DirectionsProvider is the routing-service boundary consumed by the matching
// pipeline and by route creation.
//
//go:generate mockgen -destination=mocks/mock_directions.go -package=mocks github.com/cropool/backend/services/routes DirectionsProvider
type DirectionsProvider interface {
	// Estimate returns distance/duration/polyline for a direct trip.
	Estimate(ctx context.Context, origin, destination models.Coordinate) (*models.RouteEstimate, error)

	// EstimateWithWaypoints returns the optimized route through the waypoints;
	// WaypointOrder is a permutation of the request's waypoint indices.
	EstimateWithWaypoints(ctx context.Context, origin, destination models.Coordinate, waypoints []models.Coordinate) (*models.WaypointRoute, error)
}
