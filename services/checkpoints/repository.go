package checkpoints

import (
	"context"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/models"
)

// CheckpointRepo defines the interface for checkpoint data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cropool/backend/services/checkpoints CheckpointRepo,RouteSource,UserSource
type CheckpointRepo interface {
	CreateCheckpoint(ctx context.Context, checkpoint *models.Checkpoint) error
	GetCheckpoint(ctx context.Context, checkpointID uuid.UUID) (*models.Checkpoint, error)
	ListByRoute(ctx context.Context, routeID uuid.UUID) ([]*models.Checkpoint, error)
	ListByRouteAndPassenger(ctx context.Context, routeID, passengerID uuid.UUID) ([]*models.Checkpoint, error)

	// AcceptedByRoute returns a route's ACCEPTED checkpoints.
	AcceptedByRoute(ctx context.Context, routeID uuid.UUID) ([]*models.Checkpoint, error)

	// AcceptCheckpoint flips a REQUESTED checkpoint to ACCEPTED if and only if
	// the route still has spare capacity; check and update run in one
	// statement. ErrCapacityExceeded reports a full route.
	AcceptCheckpoint(ctx context.Context, checkpointID uuid.UUID) error

	// DeleteCheckpoint archives the row and removes it in one transaction.
	// A second call for the same ID reports ErrNotFound.
	DeleteCheckpoint(ctx context.Context, checkpointID uuid.UUID) error
}

// RouteSource exposes the route lookup the checkpoint lifecycle needs for
// ownership checks.
type RouteSource interface {
	GetRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error)
}

// UserSource resolves display names for notification bodies.
type UserSource interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}
