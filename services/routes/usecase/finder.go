package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/logger"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/internal/pkg/observability"
)

// FindRoutes runs the matching pipeline: load candidate routes matching the
// schedule and price filters, prefilter them by air distance, then rank the
// survivors against the routing service.
func (uc *routeUC) FindRoutes(ctx context.Context, requesterID uuid.UUID, req models.FindRouteRequest) ([]models.MatchCandidate, error) {
	observability.FindRouteRequests.Inc()
	started := time.Now()
	defer func() {
		observability.FindRouteLatency.Observe(time.Since(started).Seconds())
	}()

	if !req.Pickup.Valid() || !req.Dropoff.Valid() {
		return nil, apperrors.NewValidation("pickup and dropoff coordinates are out of range")
	}
	if req.MaxPriceKm != nil && *req.MaxPriceKm < 0 {
		return nil, apperrors.NewValidation("maximum price must not be negative")
	}
	if req.Schedule != nil {
		if err := req.Schedule.Validate(); err != nil {
			return nil, err
		}
	}

	requested, err := uc.requestedEstimate(ctx, req.Pickup, req.Dropoff)
	if err != nil {
		return nil, apperrors.WrapExternal(err)
	}

	candidates, err := uc.routeRepo.CandidateRoutes(ctx, requesterID, req.Schedule, req.MaxPriceKm)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded match candidates",
		logger.String("requester_id", requesterID.String()),
		logger.Int("count", len(candidates)))

	candidates = filterByAirDistance(candidates, req.Pickup, req.Dropoff,
		uc.cfg.Match.AirThresholdM, uc.cfg.Match.AirCutoff)

	r := &ranker{
		checkpoints: uc.checkpoints,
		directions:  uc.directions,
		saveRatio:   uc.cfg.Match.SaveRatio,
		tolerRatio:  uc.cfg.Match.TolerationRatio,
		cutoff:      uc.cfg.Match.RankCutoff,
	}

	matches := r.rank(ctx, candidates, req.Pickup, req.Dropoff, requested)

	logger.Info("Match pipeline finished",
		logger.String("requester_id", requesterID.String()),
		logger.Int("candidates", len(candidates)),
		logger.Int("matches", len(matches)),
		logger.Duration("elapsed", time.Since(started)))

	return matches, nil
}

// requestedEstimate resolves the pickup→dropoff estimate once per search,
// consulting the cache first. Only a fresh routing-service result is cached.
func (uc *routeUC) requestedEstimate(ctx context.Context, pickup, dropoff models.Coordinate) (*models.RouteEstimate, error) {
	if est, ok := uc.cache.GetEstimate(ctx, pickup, dropoff); ok {
		return est, nil
	}

	est, err := uc.directions.Estimate(ctx, pickup, dropoff)
	if err != nil {
		observability.DirectionsCalls.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.DirectionsCalls.WithLabelValues("ok").Inc()

	uc.cache.SetEstimate(ctx, pickup, dropoff, est)

	return est, nil
}
