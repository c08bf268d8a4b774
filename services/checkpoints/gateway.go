package checkpoints

import (
	"context"

	"github.com/cropool/backend/internal/pkg/models"
)

// CheckpointGW defines the interface for checkpoint event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cropool/backend/services/checkpoints CheckpointGW
type CheckpointGW interface {
	PublishCheckpointRequested(ctx context.Context, event *models.NotificationEvent) error
	PublishCheckpointAccepted(ctx context.Context, event *models.NotificationEvent) error
	PublishCheckpointRemoved(ctx context.Context, event *models.NotificationEvent) error
	PublishCheckpointUnsubscribed(ctx context.Context, event *models.NotificationEvent) error
}
