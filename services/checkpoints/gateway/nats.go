package gateway

import (
	"context"
	"fmt"

	"github.com/cropool/backend/internal/pkg/constants"
	"github.com/cropool/backend/internal/pkg/logger"
	"github.com/cropool/backend/internal/pkg/models"
	natspkg "github.com/cropool/backend/internal/pkg/nats"
)

// CheckpointGW publishes checkpoint lifecycle events to NATS
type CheckpointGW struct {
	producer *natspkg.Producer
}

// NewCheckpointGW creates a new checkpoint gateway instance
func NewCheckpointGW(producer *natspkg.Producer) *CheckpointGW {
	return &CheckpointGW{
		producer: producer,
	}
}

// PublishCheckpointRequested publishes a checkpoint request event
func (g *CheckpointGW) PublishCheckpointRequested(ctx context.Context, event *models.NotificationEvent) error {
	return g.publish(ctx, constants.SubjectCheckpointRequested, event)
}

// PublishCheckpointAccepted publishes a checkpoint accept event
func (g *CheckpointGW) PublishCheckpointAccepted(ctx context.Context, event *models.NotificationEvent) error {
	return g.publish(ctx, constants.SubjectCheckpointAccepted, event)
}

// PublishCheckpointRemoved publishes a checkpoint removal event
func (g *CheckpointGW) PublishCheckpointRemoved(ctx context.Context, event *models.NotificationEvent) error {
	return g.publish(ctx, constants.SubjectCheckpointRemoved, event)
}

// PublishCheckpointUnsubscribed publishes a checkpoint unsubscribe event
func (g *CheckpointGW) PublishCheckpointUnsubscribed(ctx context.Context, event *models.NotificationEvent) error {
	return g.publish(ctx, constants.SubjectCheckpointUnsubscribed, event)
}

func (g *CheckpointGW) publish(ctx context.Context, subject string, event *models.NotificationEvent) error {
	if err := g.producer.Publish(subject, event); err != nil {
		logger.Error("Failed to publish checkpoint event",
			logger.String("subject", subject),
			logger.String("checkpoint_id", event.CheckpointID.String()),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}

	logger.Info("Published checkpoint event",
		logger.String("subject", subject),
		logger.String("checkpoint_id", event.CheckpointID.String()),
		logger.String("recipient_id", event.RecipientID.String()))

	return nil
}
