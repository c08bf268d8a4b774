package checkpoints

import (
	"context"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/models"
)

// CheckpointUC defines the interface for checkpoint lifecycle logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cropool/backend/services/checkpoints CheckpointUC
type CheckpointUC interface {
	// CreateCheckpoint registers a passenger's pickup/dropoff request on a route.
	CreateCheckpoint(ctx context.Context, callerID uuid.UUID, checkpoint *models.Checkpoint) (*models.Checkpoint, error)

	// AcceptCheckpoint lets the route owner confirm a requested checkpoint,
	// subject to the route's passenger capacity.
	AcceptCheckpoint(ctx context.Context, callerID, checkpointID uuid.UUID) error

	// RemoveCheckpoint lets the route owner take a checkpoint off the route.
	RemoveCheckpoint(ctx context.Context, callerID, checkpointID uuid.UUID) error

	// UnsubscribeCheckpoint lets the passenger withdraw their own checkpoint.
	UnsubscribeCheckpoint(ctx context.Context, callerID, checkpointID uuid.UUID) error

	// ListRouteCheckpoints returns a route's checkpoints for its owner, or the
	// caller's own checkpoints on that route otherwise.
	ListRouteCheckpoints(ctx context.Context, callerID, routeID uuid.UUID) ([]*models.Checkpoint, error)
}
