package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/logger"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/services/checkpoints"
)

// checkpointUC implements the checkpoints.CheckpointUC interface
type checkpointUC struct {
	cfg            *models.Config
	checkpointRepo checkpoints.CheckpointRepo
	routeSource    checkpoints.RouteSource
	userSource     checkpoints.UserSource
	gateway        checkpoints.CheckpointGW
}

// NewCheckpointUC creates a new checkpoint use case
func NewCheckpointUC(
	cfg *models.Config,
	checkpointRepo checkpoints.CheckpointRepo,
	routeSource checkpoints.RouteSource,
	userSource checkpoints.UserSource,
	gateway checkpoints.CheckpointGW,
) checkpoints.CheckpointUC {
	return &checkpointUC{
		cfg:            cfg,
		checkpointRepo: checkpointRepo,
		routeSource:    routeSource,
		userSource:     userSource,
		gateway:        gateway,
	}
}

// CreateCheckpoint registers the caller's pickup/dropoff request on a route.
// Route owners cannot ride along on their own route.
func (uc *checkpointUC) CreateCheckpoint(ctx context.Context, callerID uuid.UUID, checkpoint *models.Checkpoint) (*models.Checkpoint, error) {
	if !checkpoint.Pickup.Valid() || !checkpoint.Dropoff.Valid() {
		return nil, apperrors.NewValidation("pickup and dropoff coordinates are out of range")
	}

	route, err := uc.routeSource.GetRoute(ctx, checkpoint.RouteID)
	if err != nil {
		return nil, err
	}
	if route.OwnerID == callerID {
		return nil, apperrors.NewValidation("route owner cannot request a checkpoint on their own route")
	}

	existing, err := uc.checkpointRepo.ListByRouteAndPassenger(ctx, checkpoint.RouteID, callerID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.NewValidation("a checkpoint on this route already exists")
	}

	checkpoint.ID = uuid.New()
	checkpoint.PassengerID = callerID
	checkpoint.Status = models.CheckpointStatusRequested
	checkpoint.CreatedAt = time.Now()

	if err := uc.checkpointRepo.CreateCheckpoint(ctx, checkpoint); err != nil {
		return nil, err
	}

	logger.Info("Checkpoint requested",
		logger.String("checkpoint_id", checkpoint.ID.String()),
		logger.String("route_id", route.ID.String()),
		logger.String("passenger_id", callerID.String()))

	event := uc.notification(ctx, callerID, checkpoint, "New checkpoint request",
		"%s requested a seat on your route")
	event.RecipientID = route.OwnerID
	if err := uc.gateway.PublishCheckpointRequested(ctx, event); err != nil {
		logger.Warn("Failed to publish checkpoint request notification",
			logger.String("checkpoint_id", checkpoint.ID.String()),
			logger.Err(err))
	}

	return checkpoint, nil
}

// AcceptCheckpoint confirms a requested checkpoint on the caller's route.
// The capacity check runs atomically in the repository update.
func (uc *checkpointUC) AcceptCheckpoint(ctx context.Context, callerID, checkpointID uuid.UUID) error {
	checkpoint, err := uc.checkpointRepo.GetCheckpoint(ctx, checkpointID)
	if err != nil {
		return err
	}

	route, err := uc.routeSource.GetRoute(ctx, checkpoint.RouteID)
	if err != nil {
		return err
	}
	if route.OwnerID != callerID {
		return apperrors.ErrForbidden
	}
	if checkpoint.Status != models.CheckpointStatusRequested {
		return apperrors.NewValidation("checkpoint is not in REQUESTED state")
	}

	if err := uc.checkpointRepo.AcceptCheckpoint(ctx, checkpointID); err != nil {
		return err
	}

	logger.Info("Checkpoint accepted",
		logger.String("checkpoint_id", checkpointID.String()),
		logger.String("route_id", route.ID.String()))

	event := uc.notification(ctx, callerID, checkpoint, "Checkpoint accepted",
		"%s accepted your checkpoint request")
	event.RecipientID = checkpoint.PassengerID
	if err := uc.gateway.PublishCheckpointAccepted(ctx, event); err != nil {
		logger.Warn("Failed to publish checkpoint accept notification",
			logger.String("checkpoint_id", checkpointID.String()),
			logger.Err(err))
	}

	return nil
}

// RemoveCheckpoint takes a checkpoint off the caller's route and informs the
// passenger. Replays after the first removal report not found.
func (uc *checkpointUC) RemoveCheckpoint(ctx context.Context, callerID, checkpointID uuid.UUID) error {
	checkpoint, err := uc.checkpointRepo.GetCheckpoint(ctx, checkpointID)
	if err != nil {
		return err
	}

	route, err := uc.routeSource.GetRoute(ctx, checkpoint.RouteID)
	if err != nil {
		return err
	}
	if route.OwnerID != callerID {
		return apperrors.ErrForbidden
	}

	if err := uc.checkpointRepo.DeleteCheckpoint(ctx, checkpointID); err != nil {
		return err
	}

	logger.Info("Checkpoint removed by owner",
		logger.String("checkpoint_id", checkpointID.String()),
		logger.String("route_id", route.ID.String()))

	event := uc.notification(ctx, callerID, checkpoint, "Checkpoint removed",
		"%s removed your checkpoint from the route")
	event.RecipientID = checkpoint.PassengerID
	if err := uc.gateway.PublishCheckpointRemoved(ctx, event); err != nil {
		logger.Warn("Failed to publish checkpoint removal notification",
			logger.String("checkpoint_id", checkpointID.String()),
			logger.Err(err))
	}

	return nil
}

// UnsubscribeCheckpoint withdraws the caller's own checkpoint and informs the
// route owner.
func (uc *checkpointUC) UnsubscribeCheckpoint(ctx context.Context, callerID, checkpointID uuid.UUID) error {
	checkpoint, err := uc.checkpointRepo.GetCheckpoint(ctx, checkpointID)
	if err != nil {
		return err
	}
	if checkpoint.PassengerID != callerID {
		return apperrors.ErrForbidden
	}

	route, err := uc.routeSource.GetRoute(ctx, checkpoint.RouteID)
	if err != nil {
		return err
	}

	if err := uc.checkpointRepo.DeleteCheckpoint(ctx, checkpointID); err != nil {
		return err
	}

	logger.Info("Checkpoint unsubscribed by passenger",
		logger.String("checkpoint_id", checkpointID.String()),
		logger.String("route_id", route.ID.String()))

	event := uc.notification(ctx, callerID, checkpoint, "Passenger left your route",
		"%s withdrew their checkpoint from your route")
	event.RecipientID = route.OwnerID
	if err := uc.gateway.PublishCheckpointUnsubscribed(ctx, event); err != nil {
		logger.Warn("Failed to publish checkpoint unsubscribe notification",
			logger.String("checkpoint_id", checkpointID.String()),
			logger.Err(err))
	}

	return nil
}

// ListRouteCheckpoints returns the whole list for the route owner and the
// caller's own checkpoints for everyone else.
func (uc *checkpointUC) ListRouteCheckpoints(ctx context.Context, callerID, routeID uuid.UUID) ([]*models.Checkpoint, error) {
	route, err := uc.routeSource.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	if route.OwnerID == callerID {
		return uc.checkpointRepo.ListByRoute(ctx, routeID)
	}
	return uc.checkpointRepo.ListByRouteAndPassenger(ctx, routeID, callerID)
}

// notification builds the event for a lifecycle change. actorID names the user
// whose display name goes into the body; a profile lookup failure degrades to
// a generic placeholder rather than blocking the operation.
func (uc *checkpointUC) notification(ctx context.Context, actorID uuid.UUID, checkpoint *models.Checkpoint, title, bodyFormat string) *models.NotificationEvent {
	name := "A carpool user"
	profile, err := uc.userSource.GetProfile(ctx, actorID)
	if err != nil {
		logger.Warn("Falling back to placeholder name in notification",
			logger.String("user_id", actorID.String()),
			logger.Err(err))
	} else {
		name = displayName(profile)
	}

	return &models.NotificationEvent{
		RecipientID:  actorID,
		RouteID:      checkpoint.RouteID,
		CheckpointID: checkpoint.ID,
		Title:        title,
		Body:         fmt.Sprintf(bodyFormat, name),
		CreatedAt:    time.Now(),
	}
}

func displayName(p *models.UserProfile) string {
	if p.FirstName == "" && p.LastName == "" {
		return "A carpool user"
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
