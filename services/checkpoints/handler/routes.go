package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cropool/backend/internal/pkg/middleware"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/services/checkpoints"
	httpHandler "github.com/cropool/backend/services/checkpoints/handler/http"
)

// Handler combines all handlers for the checkpoints service
type Handler struct {
	checkpointHTTP *httpHandler.CheckpointHandler
}

// NewHandler creates a new combined handler
func NewHandler(checkpointUC checkpoints.CheckpointUC) *Handler {
	return &Handler{
		checkpointHTTP: httpHandler.NewCheckpointHandler(checkpointUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	group := e.Group("/checkpoint", middleware.JWTAuthMiddleware(jwtConfig))

	group.POST("", h.checkpointHTTP.CreateCheckpoint)
	group.POST("/:checkpointID/accept", h.checkpointHTTP.AcceptCheckpoint)
	group.DELETE("/:checkpointID", h.checkpointHTTP.RemoveCheckpoint)
	group.DELETE("/:checkpointID/subscription", h.checkpointHTTP.UnsubscribeCheckpoint)
	group.GET("/route/:routeID", h.checkpointHTTP.ListRouteCheckpoints)
}
