package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/constants"
)

// Response represents a standard API response.
// Feedback is a symbolic code the client can branch on; Error never carries
// internal detail, only a short human-readable reason.
type Response struct {
	Success  bool        `json:"success"`
	Feedback string      `json:"feedback"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, feedback, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success:  true,
		Feedback: feedback,
		Message:  message,
		Data:     data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, feedback, errorMessage string) error {
	return c.JSON(statusCode, Response{
		Success:  false,
		Feedback: feedback,
		Error:    errorMessage,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, constants.FeedbackInvalidRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, constants.FeedbackForbidden, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, constants.FeedbackForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, constants.FeedbackNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, constants.FeedbackDatabaseError, errorMessage)
}

// DomainErrorResponse maps the error taxonomy onto status class + feedback code.
// Unrecognized errors fall through as storage failures; detail stays in logs.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return ErrorResponseHandler(c, http.StatusBadRequest, constants.FeedbackInvalidRequest, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return ForbiddenResponse(c, "")
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, "")
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		return ErrorResponseHandler(c, http.StatusConflict, constants.FeedbackCapacityExceeded, "Route is at maximum passenger capacity")
	case errors.Is(err, apperrors.ErrExternalService):
		return ErrorResponseHandler(c, http.StatusBadGateway, constants.FeedbackExternalError, "Routing service unavailable")
	default:
		return InternalServerErrorResponse(c, "")
	}
}
