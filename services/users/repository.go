package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cropool/backend/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)

	// UpdateLastLogout stamps the session cutoff used by Refresh.
	UpdateLastLogout(ctx context.Context, userID uuid.UUID) error
}
