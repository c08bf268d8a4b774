package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/jwt"
	"github.com/cropool/backend/internal/pkg/logger"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/services/users"
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates an account with a bcrypt password hash
func (uc *userUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidation("a valid e-mail address is required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.NewValidation("password must be at least 8 characters")
	}
	if req.FirstName == "" {
		return nil, apperrors.NewValidation("first name is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		LastLogout:   time.Unix(0, 0),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()))

	return user, nil
}

// Login verifies credentials and issues a token pair.
// Unknown address and wrong password are indistinguishable to the caller.
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.ErrWrongCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrWrongCredentials
	}

	pair, err := uc.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID.String()))

	return pair, nil
}

// Refresh exchanges a refresh token for a fresh pair. Tokens issued before
// the user's last logout are dead.
func (uc *userUC) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := jwt.ValidateToken(refreshToken, uc.cfg.JWT.Secret, jwt.KindRefresh)
	if err != nil {
		return nil, apperrors.ErrWrongCredentials
	}

	rawID, _ := (*claims)["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperrors.ErrWrongCredentials
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.ErrWrongCredentials
		}
		return nil, err
	}

	issuedAt, err := jwt.IssuedAt(claims)
	if err != nil {
		return nil, apperrors.ErrWrongCredentials
	}
	if issuedAt.Before(user.LastLogout) {
		return nil, apperrors.ErrWrongCredentials
	}

	return uc.issueTokenPair(user)
}

// Logout invalidates all outstanding tokens by moving the session cutoff
func (uc *userUC) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := uc.userRepo.UpdateLastLogout(ctx, userID); err != nil {
		return err
	}

	logger.Info("User logged out",
		logger.String("user_id", userID.String()))

	return nil
}

// GetProfile returns a user's public profile
func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	return uc.userRepo.GetProfile(ctx, userID)
}

func (uc *userUC) issueTokenPair(user *models.User) (*models.TokenPair, error) {
	access, accessExp, err := jwt.GenerateToken(user.ID, user.Email, jwt.KindAccess, uc.cfg)
	if err != nil {
		return nil, err
	}

	refresh, refreshExp, err := jwt.GenerateToken(user.ID, user.Email, jwt.KindRefresh, uc.cfg)
	if err != nil {
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}
