package usecase

import (
	"math"
	"sort"

	"github.com/cropool/backend/internal/pkg/geo"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/internal/pkg/observability"
)

// filterByAirDistance scores every candidate by the smaller of the
// great-circle distances start→pickup and finish→dropoff. Candidates whose
// score reaches the threshold keep an infinite score so they sort last, then
// the list is cut off at the configured size.
func filterByAirDistance(candidates []models.CandidateRoute, pickup, dropoff models.Coordinate, thresholdM float64, cutoff int) []models.CandidateRoute {
	for i := range candidates {
		c := &candidates[i]
		startDist := geo.DistanceMeters(c.Route.Start, pickup)
		finishDist := geo.DistanceMeters(c.Route.Finish, dropoff)

		score := math.Min(startDist, finishDist)
		if score >= thresholdM {
			score = math.MaxFloat64
		}
		c.AirScore = score
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].AirScore < candidates[j].AirScore
	})

	if cutoff > 0 && len(candidates) > cutoff {
		observability.CandidatesDropped.WithLabelValues("air_cutoff").Add(float64(len(candidates) - cutoff))
		candidates = candidates[:cutoff]
	}

	return candidates
}
