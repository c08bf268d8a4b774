package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cropool/backend/internal/pkg/constants"
	"github.com/cropool/backend/internal/pkg/middleware"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/internal/utils"
	"github.com/cropool/backend/services/routes"
)

// RouteHandler handles HTTP requests for route operations
type RouteHandler struct {
	routeUC routes.RouteUC
}

// NewRouteHandler creates a new route HTTP handler
func NewRouteHandler(routeUC routes.RouteUC) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
	}
}

// CreateRouteRequest is the request structure for route creation
type CreateRouteRequest struct {
	Start            models.Coordinate      `json:"start"`
	Finish           models.Coordinate      `json:"finish"`
	CustomRecurrence bool                   `json:"custom_recurrence"`
	RecurrenceMode   *models.RecurrenceMode `json:"recurrence_mode,omitempty"`
	WeeklyDays       *uint8                 `json:"weekly_days,omitempty"`
	DayOfMonth       *int                   `json:"day_of_month,omitempty"`
	HourOfDay        *int                   `json:"hour_of_day,omitempty"`
	MinuteOfHour     *int                   `json:"minute_of_hour,omitempty"`
	Note             *string                `json:"note,omitempty"`
	PricePerKm       float64                `json:"price_per_km"`
	MaxPassengers    int                    `json:"max_passengers"`
}

// CreateRoute handles the creation of a recurring route offer
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	var req CreateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	route := &models.Route{
		OwnerID:          callerID,
		Start:            req.Start,
		Finish:           req.Finish,
		CustomRecurrence: req.CustomRecurrence,
		RecurrenceMode:   req.RecurrenceMode,
		WeeklyDays:       req.WeeklyDays,
		DayOfMonth:       req.DayOfMonth,
		HourOfDay:        req.HourOfDay,
		MinuteOfHour:     req.MinuteOfHour,
		Note:             req.Note,
		PricePerKm:       req.PricePerKm,
		MaxPassengers:    req.MaxPassengers,
	}

	created, err := h.routeUC.CreateRoute(c.Request().Context(), route)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, constants.FeedbackRouteCreated,
		"Route created successfully", created)
}

// ListRoutes returns the caller's own routes
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	list, err := h.routeUC.ListOwnRoutes(c.Request().Context(), callerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackRouteList,
		"Routes retrieved successfully", list)
}

// DeleteRoute removes one of the caller's routes
func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	routeID, err := uuid.Parse(c.Param("routeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "route ID must be a valid UUID")
	}

	if err := h.routeUC.DeleteRoute(c.Request().Context(), callerID, routeID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackRouteDeleted,
		"Route deleted successfully", nil)
}

// FindRoutes runs the matching pipeline for the caller's trip request
func (h *RouteHandler) FindRoutes(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	var req models.FindRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	matches, err := h.routeUC.FindRoutes(c.Request().Context(), callerID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackRoutesFound,
		"Matching routes retrieved", matches)
}
