package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mmcloughlin/geohash"

	"github.com/cropool/backend/internal/pkg/constants"
	"github.com/cropool/backend/internal/pkg/logger"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/internal/pkg/observability"
)

// EstimateCache stores pickup->dropoff routing estimates in redis. Keys are
// geohash pairs, so requests from nearly the same two points share an entry.
type EstimateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEstimateCache creates a cache with the configured TTL.
func NewEstimateCache(client *redis.Client, cfg *models.Config) *EstimateCache {
	ttl := time.Duration(cfg.Match.DirectionsCacheMn) * time.Minute
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &EstimateCache{client: client, ttl: ttl}
}

func cacheKey(pickup, dropoff models.Coordinate) string {
	return constants.KeyDirectionsCache +
		geohash.EncodeWithPrecision(pickup.Latitude, pickup.Longitude, constants.GeohashPrecision) +
		":" +
		geohash.EncodeWithPrecision(dropoff.Latitude, dropoff.Longitude, constants.GeohashPrecision)
}

// GetEstimate returns a cached estimate, if any. Cache errors count as misses.
func (ec *EstimateCache) GetEstimate(ctx context.Context, pickup, dropoff models.Coordinate) (*models.RouteEstimate, bool) {
	raw, err := ec.client.Get(ctx, cacheKey(pickup, dropoff)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Directions cache read failed", logger.Err(err))
		}
		return nil, false
	}

	var est models.RouteEstimate
	if err := json.Unmarshal([]byte(raw), &est); err != nil {
		logger.Warn("Directions cache entry malformed", logger.Err(err))
		return nil, false
	}

	observability.DirectionsCacheHits.Inc()
	return &est, true
}

// SetEstimate stores an estimate, best effort.
func (ec *EstimateCache) SetEstimate(ctx context.Context, pickup, dropoff models.Coordinate, est *models.RouteEstimate) {
	raw, err := json.Marshal(est)
	if err != nil {
		return
	}

	if err := ec.client.Set(ctx, cacheKey(pickup, dropoff), raw, ec.ttl).Err(); err != nil {
		logger.Warn("Directions cache write failed", logger.Err(err))
	}
}
