package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cropool/backend/internal/pkg/middleware"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/services/users"
	httpHandler "github.com/cropool/backend/services/users/handler/http"
)

// Handler combines all handlers for the users service
type Handler struct {
	userHTTP *httpHandler.UserHandler
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC) *Handler {
	return &Handler{
		userHTTP: httpHandler.NewUserHandler(userUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	auth := e.Group("/auth")
	auth.POST("/register", h.userHTTP.Register)
	auth.POST("/login", h.userHTTP.Login)
	auth.POST("/refresh", h.userHTTP.Refresh)

	user := e.Group("/user", middleware.JWTAuthMiddleware(jwtConfig))
	user.POST("/logout", h.userHTTP.Logout)
	user.GET("/me", h.userHTTP.Me)
	user.GET("/:userID", h.userHTTP.GetProfile)
}
