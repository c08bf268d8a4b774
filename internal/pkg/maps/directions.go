// Package maps adapts the Google Directions API to the shapes the matching
// pipeline needs: leg sums, encoded overview polyline and waypoint order.
package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/cropool/backend/internal/pkg/models"
)

// DirectionsClient wraps the Google Maps client with per-call timeouts.
type DirectionsClient struct {
	client  *maps.Client
	timeout time.Duration
}

// NewDirectionsClient creates a client from routing-service config.
func NewDirectionsClient(cfg models.DirectionsConfig) (*DirectionsClient, error) {
	client, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &DirectionsClient{client: client, timeout: timeout}, nil
}

func latLng(c models.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
}

// Estimate returns distance, duration and polyline for a direct origin->destination trip.
func (d *DirectionsClient) Estimate(ctx context.Context, origin, destination models.Coordinate) (*models.RouteEstimate, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req := &maps.DirectionsRequest{
		Origin:      latLng(origin),
		Destination: latLng(destination),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := d.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions call failed: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found between %s and %s", req.Origin, req.Destination)
	}

	est := sumLegs(&routes[0])
	return &est, nil
}

// EstimateWithWaypoints returns the optimized route through the given waypoints.
// The returned WaypointOrder is a permutation of the request's waypoint indices.
func (d *DirectionsClient) EstimateWithWaypoints(ctx context.Context, origin, destination models.Coordinate, waypoints []models.Coordinate) (*models.WaypointRoute, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	wps := make([]string, 0, len(waypoints))
	for _, w := range waypoints {
		wps = append(wps, latLng(w))
	}

	req := &maps.DirectionsRequest{
		Origin:      latLng(origin),
		Destination: latLng(destination),
		Waypoints:   wps,
		Optimize:    true,
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := d.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions call failed: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found between %s and %s", req.Origin, req.Destination)
	}

	route := &routes[0]
	return &models.WaypointRoute{
		RouteEstimate: sumLegs(route),
		WaypointOrder: route.WaypointOrder,
	}, nil
}

func sumLegs(route *maps.Route) models.RouteEstimate {
	var est models.RouteEstimate
	for _, leg := range route.Legs {
		est.DistanceM += float64(leg.Distance.Meters)
		est.Duration += leg.Duration
	}
	est.Polyline = route.OverviewPolyline.Points
	return est
}
