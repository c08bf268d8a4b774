package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/models"
)

// RouteRepo defines the interface for route data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cropool/backend/services/routes RouteRepo,CheckpointSource,EstimateCache
type RouteRepo interface {
	CreateRoute(ctx context.Context, route *models.Route) error
	GetRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Route, error)
	DeleteRoute(ctx context.Context, routeID uuid.UUID) error

	// CandidateRoutes returns routes compatible with the requested schedule and
	// price ceiling, excluding routes owned by the requester and routes where
	// the requester already holds an ACCEPTED checkpoint.
	CandidateRoutes(ctx context.Context, requesterID uuid.UUID, schedule *models.ScheduleFilter, maxPriceKm *float64) ([]models.CandidateRoute, error)
}

// CheckpointSource exposes the accepted checkpoints the detour ranker threads
// into each candidate's waypoint list.
type CheckpointSource interface {
	AcceptedByRoute(ctx context.Context, routeID uuid.UUID) ([]*models.Checkpoint, error)
}

// EstimateCache caches pickup->dropoff routing estimates across find-route calls.
// Lookups are best effort; a miss or cache failure just costs a routing call.
type EstimateCache interface {
	GetEstimate(ctx context.Context, pickup, dropoff models.Coordinate) (*models.RouteEstimate, bool)
	SetEstimate(ctx context.Context, pickup, dropoff models.Coordinate, est *models.RouteEstimate)
}
