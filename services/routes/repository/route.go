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

const routeColumns = `
	r.id, r.owner_id,
	r.start_latitude, r.start_longitude, r.finish_latitude, r.finish_longitude,
	r.baseline_distance_m, r.baseline_duration_s,
	r.custom_recurrence, r.recurrence_mode, r.weekly_days, r.day_of_month,
	r.hour_of_day, r.minute_of_hour, r.note,
	r.price_per_km, r.max_passengers, r.created_at`

// RouteRepo provides route data access over postgres
type RouteRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(cfg *models.Config, db *sqlx.DB) *RouteRepo {
	return &RouteRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRoute inserts a new route row
func (r *RouteRepo) CreateRoute(ctx context.Context, route *models.Route) error {
	query := `
		INSERT INTO routes (
			id, owner_id,
			start_latitude, start_longitude, finish_latitude, finish_longitude,
			baseline_distance_m, baseline_duration_s,
			custom_recurrence, recurrence_mode, weekly_days, day_of_month,
			hour_of_day, minute_of_hour, note,
			price_per_km, max_passengers, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	dto := route.ToDTO()
	_, err := r.db.ExecContext(
		ctx,
		query,
		dto.ID,
		dto.OwnerID,
		dto.StartLatitude,
		dto.StartLongitude,
		dto.FinishLatitude,
		dto.FinishLongitude,
		dto.BaselineDistanceM,
		dto.BaselineDurationS,
		dto.CustomRecurrence,
		dto.RecurrenceMode,
		dto.WeeklyDays,
		dto.DayOfMonth,
		dto.HourOfDay,
		dto.MinuteOfHour,
		dto.Note,
		dto.PricePerKm,
		dto.MaxPassengers,
		dto.CreatedAt,
	)
	if err != nil {
		return apperrors.WrapStorage(err)
	}

	return nil
}

// GetRoute retrieves a route by ID
func (r *RouteRepo) GetRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error) {
	query := fmt.Sprintf(`SELECT %s FROM routes r WHERE r.id = $1`, routeColumns)

	var dto models.RouteDTO
	err := r.db.GetContext(ctx, &dto, query, routeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapStorage(err)
	}

	return dto.ToRoute(), nil
}

// ListByOwner retrieves all routes owned by a user, newest first
func (r *RouteRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Route, error) {
	query := fmt.Sprintf(`SELECT %s FROM routes r WHERE r.owner_id = $1 ORDER BY r.created_at DESC`, routeColumns)

	var dtos []models.RouteDTO
	if err := r.db.SelectContext(ctx, &dtos, query, ownerID); err != nil {
		return nil, apperrors.WrapStorage(err)
	}

	result := make([]*models.Route, 0, len(dtos))
	for i := range dtos {
		result = append(result, dtos[i].ToRoute())
	}
	return result, nil
}

// DeleteRoute removes a route row
func (r *RouteRepo) DeleteRoute(ctx context.Context, routeID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, routeID)
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

	return nil
}

// candidateRowDTO joins route columns with the owner profile snippet
type candidateRowDTO struct {
	models.RouteDTO
	OwnerFirstName string `db:"owner_first_name"`
	OwnerLastName  string `db:"owner_last_name"`
	OwnerPicture   string `db:"owner_picture"`
}

// CandidateRoutes returns schedule- and price-compatible routes for a requester.
// Routes owned by the requester, and routes where the requester already holds
// an ACCEPTED checkpoint, never appear in the result.
func (r *RouteRepo) CandidateRoutes(ctx context.Context, requesterID uuid.UUID, schedule *models.ScheduleFilter, maxPriceKm *float64) ([]models.CandidateRoute, error) {
	base := fmt.Sprintf(`
		SELECT %s,
			u.first_name AS owner_first_name,
			u.last_name AS owner_last_name,
			COALESCE(u.profile_picture, '') AS owner_picture
		FROM routes r
		JOIN users u ON u.id = r.owner_id
		WHERE r.owner_id <> $1
		AND NOT EXISTS (
			SELECT 1 FROM checkpoints c
			WHERE c.route_id = r.id AND c.passenger_id = $1 AND c.status = 'ACCEPTED'
		)`, routeColumns)

	// Optional clauses bind in fixed order: schedule first, then price ceiling.
	p := &predicate{}
	if schedule != nil {
		scheduleClauses(p, schedule, r.cfg.Match.WeeklyOverlap)
	}
	if maxPriceKm != nil {
		p.add("r.price_per_km <= ?", *maxPriceKm)
	}

	where, args := p.Build(2)
	query := base + where + ` ORDER BY r.created_at DESC`

	allArgs := append([]interface{}{requesterID}, args...)

	var rows []candidateRowDTO
	if err := r.db.SelectContext(ctx, &rows, query, allArgs...); err != nil {
		return nil, apperrors.WrapStorage(err)
	}

	result := make([]models.CandidateRoute, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		name := row.OwnerFirstName
		if row.OwnerLastName != "" {
			name = name + " " + row.OwnerLastName
		}
		result = append(result, models.CandidateRoute{
			Route:        *row.RouteDTO.ToRoute(),
			OwnerName:    name,
			OwnerPicture: row.OwnerPicture,
		})
	}

	return result, nil
}
