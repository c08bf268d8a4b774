package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/models"
)

// UserUC defines the interface for account and session logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cropool/backend/services/users UserUC
type UserUC interface {
	// Register creates a new account; the e-mail address must be unused.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenPair, error)

	// Refresh exchanges a valid refresh token for a fresh pair. Tokens issued
	// before the user's last logout are refused.
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)

	// Logout invalidates all tokens issued before now.
	Logout(ctx context.Context, userID uuid.UUID) error

	// GetProfile returns a user's public profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}
