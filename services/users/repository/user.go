package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/models"
)

// UserRepo provides user data access over postgres
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser inserts a new account row. The unique index on email backs the
// uniqueness guarantee; a violation surfaces as ErrEmailTaken.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, email, first_name, last_name, password_hash,
			profile_picture, created_at, last_logout
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		user.ProfilePicture,
		user.CreatedAt,
		user.LastLogout,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperrors.ErrEmailTaken
		}
		return apperrors.WrapStorage(err)
	}

	return nil
}

// GetUserByEmail retrieves an account by its e-mail address
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, first_name, last_name, password_hash,
			COALESCE(profile_picture, '') AS profile_picture, created_at, last_logout
		FROM users WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapStorage(err)
	}

	return &user, nil
}

// GetUserByID retrieves an account by ID
func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, first_name, last_name, password_hash,
			COALESCE(profile_picture, '') AS profile_picture, created_at, last_logout
		FROM users WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapStorage(err)
	}

	return &user, nil
}

// GetProfile retrieves the public slice of an account
func (r *UserRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	query := `
		SELECT id, first_name, last_name,
			COALESCE(profile_picture, '') AS profile_picture
		FROM users WHERE id = $1
	`

	var profile models.UserProfile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapStorage(err)
	}

	return &profile, nil
}

// UpdateLastLogout stamps the session cutoff to now
func (r *UserRepo) UpdateLastLogout(ctx context.Context, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET last_logout = NOW() WHERE id = $1`, userID)
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
