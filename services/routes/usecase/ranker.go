package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/cropool/backend/internal/pkg/logger"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/internal/pkg/observability"
	"github.com/cropool/backend/services/routes"
)

// ranker turns prefiltered candidates into ranked matches by probing the
// routing service with the requested pickup and dropoff inserted among the
// route's accepted checkpoints.
type ranker struct {
	checkpoints routes.CheckpointSource
	directions  routes.DirectionsProvider
	saveRatio   float64
	tolerRatio  float64
	cutoff      int
}

// rank evaluates all candidates concurrently, one goroutine per candidate,
// and returns the surviving matches sorted ascending by detour percentage.
// requested is the pickup→dropoff leg estimated in isolation; it bounds how
// much detour a route may absorb.
func (r *ranker) rank(ctx context.Context, candidates []models.CandidateRoute, pickup, dropoff models.Coordinate, requested *models.RouteEstimate) []models.MatchCandidate {
	results := make([]*models.MatchCandidate, len(candidates))

	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int, c *models.CandidateRoute) {
			defer wg.Done()

			match, err := r.rankOne(ctx, c, pickup, dropoff, requested)
			if err != nil {
				observability.CandidatesDropped.WithLabelValues("directions_error").Inc()
				logger.Warn("Dropping candidate after directions failure",
					logger.String("route_id", c.Route.ID.String()),
					logger.Err(err))
				return
			}
			results[i] = match
		}(i, &candidates[i])
	}
	wg.Wait()

	matches := make([]models.MatchCandidate, 0, len(candidates))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].DetourPercent != matches[j].DetourPercent {
			return matches[i].DetourPercent < matches[j].DetourPercent
		}
		return matches[i].RouteID.String() < matches[j].RouteID.String()
	})

	if r.cutoff > 0 && len(matches) > r.cutoff {
		matches = matches[:r.cutoff]
	}

	return matches
}

// rankOne probes one candidate route. The requested pickup and dropoff are
// placed first among the waypoints so that the optimized waypoint order tells
// us whether the service visits the pickup before the dropoff. A nil result
// with a nil error means the candidate failed a gate.
func (r *ranker) rankOne(ctx context.Context, c *models.CandidateRoute, pickup, dropoff models.Coordinate, requested *models.RouteEstimate) (*models.MatchCandidate, error) {
	accepted, err := r.checkpoints.AcceptedByRoute(ctx, c.Route.ID)
	if err != nil {
		return nil, err
	}

	waypoints := make([]models.Coordinate, 0, 2+2*len(accepted))
	waypoints = append(waypoints, pickup, dropoff)
	for _, cp := range accepted {
		waypoints = append(waypoints, cp.Pickup, cp.Dropoff)
	}

	probe, err := r.directions.EstimateWithWaypoints(ctx, c.Route.Start, c.Route.Finish, waypoints)
	if err != nil {
		observability.DirectionsCalls.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.DirectionsCalls.WithLabelValues("ok").Inc()

	if !pickupBeforeDropoff(probe.WaypointOrder) {
		observability.CandidatesDropped.WithLabelValues("dropoff_before_pickup").Inc()
		return nil, nil
	}

	addedDistance := probe.DistanceM - c.Route.BaselineDistanceM
	addedDuration := probe.Duration.Seconds() - float64(c.Route.BaselineDurationS)

	if addedDistance >= requested.DistanceM*(1-r.saveRatio) {
		observability.CandidatesDropped.WithLabelValues("distance_gate").Inc()
		return nil, nil
	}
	if addedDuration >= requested.Duration.Seconds()*(1+r.tolerRatio) {
		observability.CandidatesDropped.WithLabelValues("duration_gate").Inc()
		return nil, nil
	}

	detourPercent := 0.0
	if c.Route.BaselineDistanceM > 0 {
		detourPercent = (probe.DistanceM - c.Route.BaselineDistanceM) / c.Route.BaselineDistanceM * 100
	}

	return &models.MatchCandidate{
		RouteID:           c.Route.ID,
		OwnerID:           c.Route.OwnerID,
		OwnerName:         c.OwnerName,
		OwnerPicture:      c.OwnerPicture,
		BaselineDistanceM: c.Route.BaselineDistanceM,
		BaselineDurationS: c.Route.BaselineDurationS,
		DetourPercent:     detourPercent,
		Polyline:          probe.Polyline,
		PricePerKm:        c.Route.PricePerKm,
		RouteCreatedAt:    c.Route.CreatedAt,
	}, nil
}

// pickupBeforeDropoff reports whether waypoint index 0 (the requested pickup)
// appears before index 1 (the requested dropoff) in the optimized order.
func pickupBeforeDropoff(order []int) bool {
	for _, idx := range order {
		if idx == 0 {
			return true
		}
		if idx == 1 {
			return false
		}
	}
	return false
}
