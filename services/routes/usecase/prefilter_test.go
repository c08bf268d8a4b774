package usecase

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cropool/backend/internal/pkg/models"
)

func candidateAt(startLat, startLng, finishLat, finishLng float64) models.CandidateRoute {
	return models.CandidateRoute{
		Route: models.Route{
			ID:     uuid.New(),
			Start:  models.Coordinate{Latitude: startLat, Longitude: startLng},
			Finish: models.Coordinate{Latitude: finishLat, Longitude: finishLng},
		},
	}
}

func TestFilterByAirDistance_SortsByProximity(t *testing.T) {
	pickup := models.Coordinate{Latitude: 45.8150, Longitude: 15.9819}  // Zagreb
	dropoff := models.Coordinate{Latitude: 43.5081, Longitude: 16.4402} // Split

	near := candidateAt(45.8100, 15.9800, 43.5100, 16.4400)
	farther := candidateAt(45.9000, 15.9000, 43.6000, 16.5000)

	got := filterByAirDistance([]models.CandidateRoute{farther, near}, pickup, dropoff, 50000, 10)

	assert.Len(t, got, 2)
	assert.Equal(t, near.Route.ID, got[0].Route.ID)
	assert.Equal(t, farther.Route.ID, got[1].Route.ID)
	assert.Less(t, got[0].AirScore, got[1].AirScore)
}

func TestFilterByAirDistance_ScoreIsMinOfBothEnds(t *testing.T) {
	pickup := models.Coordinate{Latitude: 45.8150, Longitude: 15.9819}
	dropoff := models.Coordinate{Latitude: 43.5081, Longitude: 16.4402}

	// Start far from pickup, finish right on the dropoff: the finish side
	// must carry the score.
	c := candidateAt(40.0, 10.0, 43.5081, 16.4402)

	got := filterByAirDistance([]models.CandidateRoute{c}, pickup, dropoff, 5000, 10)

	assert.Len(t, got, 1)
	assert.InDelta(t, 0, got[0].AirScore, 1)
}

func TestFilterByAirDistance_ThresholdScoresInfinite(t *testing.T) {
	pickup := models.Coordinate{Latitude: 45.8150, Longitude: 15.9819}
	dropoff := models.Coordinate{Latitude: 43.5081, Longitude: 16.4402}

	// Both ends hundreds of kilometers away from the request.
	remote := candidateAt(48.2082, 16.3738, 48.1486, 17.1077) // Vienna -> Bratislava

	got := filterByAirDistance([]models.CandidateRoute{remote}, pickup, dropoff, 5000, 10)

	assert.Len(t, got, 1)
	assert.Equal(t, math.MaxFloat64, got[0].AirScore)
}

func TestFilterByAirDistance_CutoffTruncates(t *testing.T) {
	pickup := models.Coordinate{Latitude: 45.8150, Longitude: 15.9819}
	dropoff := models.Coordinate{Latitude: 43.5081, Longitude: 16.4402}

	candidates := make([]models.CandidateRoute, 0, 5)
	for i := 0; i < 5; i++ {
		candidates = append(candidates, candidateAt(
			45.8150+float64(i)*0.01, 15.9819,
			43.5081+float64(i)*0.01, 16.4402,
		))
	}

	got := filterByAirDistance(candidates, pickup, dropoff, 50000, 2)

	assert.Len(t, got, 2)
	// The two closest candidates survive.
	assert.LessOrEqual(t, got[0].AirScore, got[1].AirScore)
}

func TestFilterByAirDistance_EmptyInput(t *testing.T) {
	pickup := models.Coordinate{Latitude: 45.8150, Longitude: 15.9819}
	dropoff := models.Coordinate{Latitude: 43.5081, Longitude: 16.4402}

	got := filterByAirDistance(nil, pickup, dropoff, 5000, 10)

	assert.Empty(t, got)
}
