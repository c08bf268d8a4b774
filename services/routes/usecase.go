package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/models"
)

// RouteUC defines the interface for route business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cropool/backend/services/routes RouteUC
type RouteUC interface {
	CreateRoute(ctx context.Context, route *models.Route) (*models.Route, error)
	ListOwnRoutes(ctx context.Context, ownerID uuid.UUID) ([]*models.Route, error)
	DeleteRoute(ctx context.Context, callerID, routeID uuid.UUID) error
	FindRoutes(ctx context.Context, requesterID uuid.UUID, req models.FindRouteRequest) ([]models.MatchCandidate, error)
}
