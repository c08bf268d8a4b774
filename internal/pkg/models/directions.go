package models

import "time"

// RouteEstimate is the routing service's answer for a single origin->destination trip
type RouteEstimate struct {
	DistanceM float64       `json:"distance_m"`
	Duration  time.Duration `json:"duration"`
	Polyline  string        `json:"polyline"`
}

// WaypointRoute is the routing service's answer for a trip through ordered waypoints.
// WaypointOrder is the optimized visiting order as a permutation of request indices.
type WaypointRoute struct {
	RouteEstimate
	WaypointOrder []int `json:"waypoint_order"`
}
