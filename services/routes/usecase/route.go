package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/geo"
	"github.com/cropool/backend/internal/pkg/logger"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/internal/pkg/observability"
	"github.com/cropool/backend/services/routes"
)

// routeUC implements the routes.RouteUC interface
type routeUC struct {
	cfg         *models.Config
	routeRepo   routes.RouteRepo
	checkpoints routes.CheckpointSource
	directions  routes.DirectionsProvider
	cache       routes.EstimateCache
}

// NewRouteUC creates a new route use case
func NewRouteUC(
	cfg *models.Config,
	routeRepo routes.RouteRepo,
	checkpoints routes.CheckpointSource,
	directions routes.DirectionsProvider,
	cache routes.EstimateCache,
) routes.RouteUC {
	return &routeUC{
		cfg:         cfg,
		routeRepo:   routeRepo,
		checkpoints: checkpoints,
		directions:  directions,
		cache:       cache,
	}
}

// CreateRoute validates the route, computes its baseline distance/duration via
// the routing service and stores it. A routing-service failure degrades to a
// great-circle distance and a speed-based duration estimate instead of
// failing creation.
func (uc *routeUC) CreateRoute(ctx context.Context, route *models.Route) (*models.Route, error) {
	if !route.Start.Valid() || !route.Finish.Valid() {
		return nil, apperrors.NewValidation("start and finish coordinates are out of range")
	}
	if err := route.Validate(); err != nil {
		return nil, err
	}

	route.ID = uuid.New()
	route.CreatedAt = time.Now()

	est, err := uc.directions.Estimate(ctx, route.Start, route.Finish)
	if err != nil {
		observability.DirectionsCalls.WithLabelValues("error").Inc()
		logger.Warn("Baseline directions call failed, falling back to air distance",
			logger.String("route_id", route.ID.String()),
			logger.Err(err))

		distance := geo.DistanceMeters(route.Start, route.Finish)
		route.BaselineDistanceM = distance
		route.BaselineDurationS = estimateDurationS(distance, uc.cfg.Routes.FallbackSpeedKmh)
	} else {
		observability.DirectionsCalls.WithLabelValues("ok").Inc()
		route.BaselineDistanceM = est.DistanceM
		route.BaselineDurationS = int64(est.Duration.Seconds())
	}

	if err := uc.routeRepo.CreateRoute(ctx, route); err != nil {
		return nil, err
	}

	logger.Info("Route created",
		logger.String("route_id", route.ID.String()),
		logger.String("owner_id", route.OwnerID.String()),
		logger.Float64("baseline_distance_m", route.BaselineDistanceM))

	return route, nil
}

// ListOwnRoutes returns the caller's routes
func (uc *routeUC) ListOwnRoutes(ctx context.Context, ownerID uuid.UUID) ([]*models.Route, error) {
	return uc.routeRepo.ListByOwner(ctx, ownerID)
}

// DeleteRoute removes a route after checking ownership
func (uc *routeUC) DeleteRoute(ctx context.Context, callerID, routeID uuid.UUID) error {
	route, err := uc.routeRepo.GetRoute(ctx, routeID)
	if err != nil {
		return err
	}
	if route.OwnerID != callerID {
		return apperrors.ErrForbidden
	}

	return uc.routeRepo.DeleteRoute(ctx, routeID)
}

// estimateDurationS converts a distance into a duration at a constant speed.
func estimateDurationS(distanceM, speedKmh float64) int64 {
	if speedKmh <= 0 {
		speedKmh = 40
	}
	return int64(distanceM / (speedKmh * 1000.0 / 3600.0))
}
