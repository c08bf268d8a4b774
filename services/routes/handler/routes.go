package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cropool/backend/internal/pkg/middleware"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/services/routes"
	httpHandler "github.com/cropool/backend/services/routes/handler/http"
)

// Handler combines all handlers for the routes service
type Handler struct {
	routeHTTP *httpHandler.RouteHandler
}

// NewHandler creates a new combined handler
func NewHandler(routeUC routes.RouteUC) *Handler {
	return &Handler{
		routeHTTP: httpHandler.NewRouteHandler(routeUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	group := e.Group("/route", middleware.JWTAuthMiddleware(jwtConfig))

	group.POST("", h.routeHTTP.CreateRoute)
	group.GET("", h.routeHTTP.ListRoutes)
	group.DELETE("/:routeID", h.routeHTTP.DeleteRoute)
	group.POST("/find", h.routeHTTP.FindRoutes)
}
