package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/constants"
	"github.com/cropool/backend/internal/pkg/middleware"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/internal/utils"
	"github.com/cropool/backend/services/users"
)

// UserHandler handles HTTP requests for account and session operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// Register handles account creation
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return utils.ErrorResponseHandler(c, http.StatusConflict,
				constants.FeedbackEmailUnavailable, "E-mail address is already in use")
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, constants.FeedbackUserRegistered,
		"Account created successfully", user)
}

// Login handles credential login
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	pair, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWrongCredentials) {
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized,
				constants.FeedbackWrongPassword, "Wrong e-mail or password")
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackTokenIssued,
		"Login successful", pair)
}

// RefreshRequest is the request structure for token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh handles refresh-token exchange
func (h *UserHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.RefreshToken == "" {
		return utils.BadRequestResponse(c, "refresh_token is required")
	}

	pair, err := h.userUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrWrongCredentials) {
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized,
				constants.FeedbackTokenInactive, "Refresh token is no longer valid")
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackTokenIssued,
		"Token refreshed", pair)
}

// Logout invalidates the caller's outstanding tokens
func (h *UserHandler) Logout(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	if err := h.userUC.Logout(c.Request().Context(), callerID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackLoggedOut,
		"Logged out", nil)
}

// Me returns the caller's own profile
func (h *UserHandler) Me(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), callerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackUserFound,
		"Profile retrieved", profile)
}

// GetProfile returns another user's public profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	if _, ok := middleware.CallerID(c); !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "user ID must be a valid UUID")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackUserFound,
		"Profile retrieved", profile)
}
