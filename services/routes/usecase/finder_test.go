package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/services/routes/mocks"
)

func testMatchConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{
			AirThresholdM:   5000,
			AirCutoff:       20,
			RankCutoff:      5,
			SaveRatio:       0.2,
			TolerationRatio: 0.3,
		},
		Routes: models.RoutesConfig{FallbackSpeedKmh: 40},
	}
}

func TestFindRoutes_FullPipeline(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRouteRepo(ctrl)
	checkpoints := mocks.NewMockCheckpointSource(ctrl)
	directions := mocks.NewMockDirectionsProvider(ctrl)
	cache := mocks.NewMockEstimateCache(ctrl)

	uc := NewRouteUC(testMatchConfig(), repo, checkpoints, directions, cache)

	requesterID := uuid.New()
	req := models.FindRouteRequest{Pickup: testPickup, Dropoff: testDropoff}

	// The candidate runs close to the requested trip so the prefilter keeps it.
	candidate := models.CandidateRoute{
		Route: models.Route{
			ID:                uuid.New(),
			OwnerID:           uuid.New(),
			Start:             models.Coordinate{Latitude: 45.8010, Longitude: 15.9710},
			Finish:            models.Coordinate{Latitude: 45.7490, Longitude: 15.9490},
			BaselineDistanceM: 10000,
			BaselineDurationS: 900,
		},
		OwnerName: "Marko Novak",
	}

	cache.EXPECT().GetEstimate(gomock.Any(), testPickup, testDropoff).Return(nil, false)
	directions.EXPECT().
		Estimate(gomock.Any(), testPickup, testDropoff).
		Return(&models.RouteEstimate{DistanceM: 4000, Duration: 10 * time.Minute}, nil)
	cache.EXPECT().SetEstimate(gomock.Any(), testPickup, testDropoff, gomock.Any())

	repo.EXPECT().
		CandidateRoutes(gomock.Any(), requesterID, nil, nil).
		Return([]models.CandidateRoute{candidate}, nil)

	checkpoints.EXPECT().AcceptedByRoute(gomock.Any(), candidate.Route.ID).Return(nil, nil)
	directions.EXPECT().
		EstimateWithWaypoints(gomock.Any(), candidate.Route.Start, candidate.Route.Finish, gomock.Any()).
		Return(&models.WaypointRoute{
			RouteEstimate: models.RouteEstimate{DistanceM: 10500, Duration: 16 * time.Minute, Polyline: "poly"},
			WaypointOrder: []int{0, 1},
		}, nil)

	// Act
	matches, err := uc.FindRoutes(context.Background(), requesterID, req)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, candidate.Route.ID, matches[0].RouteID)
	assert.InDelta(t, 5.0, matches[0].DetourPercent, 0.001)
}

func TestFindRoutes_CacheHitSkipsDirectionsCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRouteRepo(ctrl)
	checkpoints := mocks.NewMockCheckpointSource(ctrl)
	directions := mocks.NewMockDirectionsProvider(ctrl)
	cache := mocks.NewMockEstimateCache(ctrl)

	uc := NewRouteUC(testMatchConfig(), repo, checkpoints, directions, cache)

	requesterID := uuid.New()
	req := models.FindRouteRequest{Pickup: testPickup, Dropoff: testDropoff}

	cache.EXPECT().
		GetEstimate(gomock.Any(), testPickup, testDropoff).
		Return(&models.RouteEstimate{DistanceM: 4000, Duration: 10 * time.Minute}, true)
	repo.EXPECT().
		CandidateRoutes(gomock.Any(), requesterID, nil, nil).
		Return(nil, nil)

	matches, err := uc.FindRoutes(context.Background(), requesterID, req)

	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindRoutes_DirectionsDownForRequestedLeg(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRouteRepo(ctrl)
	checkpoints := mocks.NewMockCheckpointSource(ctrl)
	directions := mocks.NewMockDirectionsProvider(ctrl)
	cache := mocks.NewMockEstimateCache(ctrl)

	uc := NewRouteUC(testMatchConfig(), repo, checkpoints, directions, cache)

	req := models.FindRouteRequest{Pickup: testPickup, Dropoff: testDropoff}

	cache.EXPECT().GetEstimate(gomock.Any(), testPickup, testDropoff).Return(nil, false)
	directions.EXPECT().
		Estimate(gomock.Any(), testPickup, testDropoff).
		Return(nil, errors.New("timeout"))

	matches, err := uc.FindRoutes(context.Background(), uuid.New(), req)

	assert.Nil(t, matches)
	assert.ErrorIs(t, err, apperrors.ErrExternalService)
}

func TestFindRoutes_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(testMatchConfig(),
		mocks.NewMockRouteRepo(ctrl),
		mocks.NewMockCheckpointSource(ctrl),
		mocks.NewMockDirectionsProvider(ctrl),
		mocks.NewMockEstimateCache(ctrl))

	req := models.FindRouteRequest{
		Pickup:  models.Coordinate{Latitude: 95, Longitude: 15.97},
		Dropoff: testDropoff,
	}

	_, err := uc.FindRoutes(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFindRoutes_NegativeMaxPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(testMatchConfig(),
		mocks.NewMockRouteRepo(ctrl),
		mocks.NewMockCheckpointSource(ctrl),
		mocks.NewMockDirectionsProvider(ctrl),
		mocks.NewMockEstimateCache(ctrl))

	price := -1.0
	req := models.FindRouteRequest{Pickup: testPickup, Dropoff: testDropoff, MaxPriceKm: &price}

	_, err := uc.FindRoutes(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFindRoutes_InvalidScheduleFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(testMatchConfig(),
		mocks.NewMockRouteRepo(ctrl),
		mocks.NewMockCheckpointSource(ctrl),
		mocks.NewMockDirectionsProvider(ctrl),
		mocks.NewMockEstimateCache(ctrl))

	req := models.FindRouteRequest{
		Pickup:  testPickup,
		Dropoff: testDropoff,
		Schedule: &models.ScheduleFilter{
			Mode:      models.RecurrenceWeekly,
			HourOfDay: 8,
		},
	}

	_, err := uc.FindRoutes(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFindRoutes_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRouteRepo(ctrl)
	directions := mocks.NewMockDirectionsProvider(ctrl)
	cache := mocks.NewMockEstimateCache(ctrl)

	uc := NewRouteUC(testMatchConfig(), repo,
		mocks.NewMockCheckpointSource(ctrl), directions, cache)

	req := models.FindRouteRequest{Pickup: testPickup, Dropoff: testDropoff}

	cache.EXPECT().GetEstimate(gomock.Any(), testPickup, testDropoff).
		Return(&models.RouteEstimate{DistanceM: 4000, Duration: 10 * time.Minute}, true)
	repo.EXPECT().
		CandidateRoutes(gomock.Any(), gomock.Any(), nil, nil).
		Return(nil, apperrors.WrapStorage(errors.New("connection refused")))

	_, err := uc.FindRoutes(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, apperrors.ErrStorage)
}
