package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/models"
)

const checkpointColumns = `
	c.id, c.route_id, c.passenger_id,
	c.pickup_latitude, c.pickup_longitude, c.dropoff_latitude, c.dropoff_longitude,
	c.status, c.created_at`

// CheckpointRepo provides checkpoint data access over postgres
type CheckpointRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCheckpointRepository creates a new checkpoint repository
func NewCheckpointRepository(cfg *models.Config, db *sqlx.DB) *CheckpointRepo {
	return &CheckpointRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateCheckpoint inserts a new checkpoint row in REQUESTED state
func (r *CheckpointRepo) CreateCheckpoint(ctx context.Context, checkpoint *models.Checkpoint) error {
	query := `
		INSERT INTO checkpoints (
			id, route_id, passenger_id,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		checkpoint.ID,
		checkpoint.RouteID,
		checkpoint.PassengerID,
		checkpoint.Pickup.Latitude,
		checkpoint.Pickup.Longitude,
		checkpoint.Dropoff.Latitude,
		checkpoint.Dropoff.Longitude,
		checkpoint.Status,
		checkpoint.CreatedAt,
	)
	if err != nil {
		return apperrors.WrapStorage(err)
	}

	return nil
}

// GetCheckpoint retrieves a checkpoint by ID
func (r *CheckpointRepo) GetCheckpoint(ctx context.Context, checkpointID uuid.UUID) (*models.Checkpoint, error) {
	query := fmt.Sprintf(`SELECT %s FROM checkpoints c WHERE c.id = $1`, checkpointColumns)

	var dto models.CheckpointDTO
	err := r.db.GetContext(ctx, &dto, query, checkpointID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapStorage(err)
	}

	return dto.ToCheckpoint(), nil
}

// ListByRoute retrieves all checkpoints attached to a route, oldest first
func (r *CheckpointRepo) ListByRoute(ctx context.Context, routeID uuid.UUID) ([]*models.Checkpoint, error) {
	query := fmt.Sprintf(`SELECT %s FROM checkpoints c WHERE c.route_id = $1 ORDER BY c.created_at`, checkpointColumns)
	return r.selectCheckpoints(ctx, query, routeID)
}

// ListByRouteAndPassenger retrieves one passenger's checkpoints on a route
func (r *CheckpointRepo) ListByRouteAndPassenger(ctx context.Context, routeID, passengerID uuid.UUID) ([]*models.Checkpoint, error) {
	query := fmt.Sprintf(`SELECT %s FROM checkpoints c WHERE c.route_id = $1 AND c.passenger_id = $2 ORDER BY c.created_at`, checkpointColumns)
	return r.selectCheckpoints(ctx, query, routeID, passengerID)
}

// AcceptedByRoute retrieves a route's ACCEPTED checkpoints, oldest first
func (r *CheckpointRepo) AcceptedByRoute(ctx context.Context, routeID uuid.UUID) ([]*models.Checkpoint, error) {
	query := fmt.Sprintf(`SELECT %s FROM checkpoints c WHERE c.route_id = $1 AND c.status = 'ACCEPTED' ORDER BY c.created_at`, checkpointColumns)
	return r.selectCheckpoints(ctx, query, routeID)
}

func (r *CheckpointRepo) selectCheckpoints(ctx context.Context, query string, args ...interface{}) ([]*models.Checkpoint, error) {
	var dtos []models.CheckpointDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, apperrors.WrapStorage(err)
	}

	result := make([]*models.Checkpoint, 0, len(dtos))
	for i := range dtos {
		result = append(result, dtos[i].ToCheckpoint())
	}
	return result, nil
}

// AcceptCheckpoint promotes a REQUESTED checkpoint to ACCEPTED. The capacity
// check is a subquery inside the same UPDATE, so concurrent accepts on a
// nearly full route cannot both pass. Zero rows affected means the route is
// already at max_passengers; lifecycle-state mismatches are resolved by the
// caller before this runs.
func (r *CheckpointRepo) AcceptCheckpoint(ctx context.Context, checkpointID uuid.UUID) error {
	query := `
		UPDATE checkpoints SET status = 'ACCEPTED'
		WHERE id = $1 AND status = 'REQUESTED'
		AND (
			SELECT COUNT(*) FROM checkpoints c2
			WHERE c2.route_id = checkpoints.route_id AND c2.status = 'ACCEPTED'
		) < (
			SELECT max_passengers FROM routes WHERE routes.id = checkpoints.route_id
		)
	`

	res, err := r.db.ExecContext(ctx, query, checkpointID)
	if err != nil {
		return apperrors.WrapStorage(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.WrapStorage(err)
	}
	if affected == 0 {
		return apperrors.ErrCapacityExceeded
	}

	return nil
}

// DeleteCheckpoint archives the row into checkpoint_archive and removes it,
// both inside one transaction. The archive insert keys on the checkpoint ID,
// so replaying a removal conflicts instead of double-archiving.
func (r *CheckpointRepo) DeleteCheckpoint(ctx context.Context, checkpointID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.WrapStorage(err)
	}
	defer tx.Rollback()

	archive := `
		INSERT INTO checkpoint_archive (
			id, route_id, passenger_id,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			status, created_at, archived_at
		)
		SELECT id, route_id, passenger_id,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			status, created_at, NOW()
		FROM checkpoints WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, archive, checkpointID); err != nil {
		return apperrors.WrapStorage(err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM checkpoints WHERE id = $1`, checkpointID)
	if err != nil {
		return apperrors.WrapStorage(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.WrapStorage(err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return apperrors.WrapStorage(err)
	}

	return nil
}
