package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cropool/backend/internal/pkg/constants"
	"github.com/cropool/backend/internal/pkg/middleware"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/internal/utils"
	"github.com/cropool/backend/services/checkpoints"
)

// CheckpointHandler handles HTTP requests for checkpoint operations
type CheckpointHandler struct {
	checkpointUC checkpoints.CheckpointUC
}

// NewCheckpointHandler creates a new checkpoint HTTP handler
func NewCheckpointHandler(checkpointUC checkpoints.CheckpointUC) *CheckpointHandler {
	return &CheckpointHandler{
		checkpointUC: checkpointUC,
	}
}

// CreateCheckpointRequest is the request structure for checkpoint creation
type CreateCheckpointRequest struct {
	RouteID uuid.UUID         `json:"route_id"`
	Pickup  models.Coordinate `json:"pickup"`
	Dropoff models.Coordinate `json:"dropoff"`
}

// CreateCheckpoint handles a passenger's checkpoint request on a route
func (h *CheckpointHandler) CreateCheckpoint(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	var req CreateCheckpointRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.RouteID == uuid.Nil {
		return utils.BadRequestResponse(c, "route_id is required")
	}

	checkpoint := &models.Checkpoint{
		RouteID: req.RouteID,
		Pickup:  req.Pickup,
		Dropoff: req.Dropoff,
	}

	created, err := h.checkpointUC.CreateCheckpoint(c.Request().Context(), callerID, checkpoint)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, constants.FeedbackCheckpointRequested,
		"Checkpoint requested successfully", created)
}

// AcceptCheckpoint handles the route owner's confirmation of a checkpoint
func (h *CheckpointHandler) AcceptCheckpoint(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	checkpointID, err := uuid.Parse(c.Param("checkpointID"))
	if err != nil {
		return utils.BadRequestResponse(c, "checkpoint ID must be a valid UUID")
	}

	if err := h.checkpointUC.AcceptCheckpoint(c.Request().Context(), callerID, checkpointID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackCheckpointAccepted,
		"Checkpoint accepted successfully", nil)
}

// RemoveCheckpoint handles the route owner taking a checkpoint off the route
func (h *CheckpointHandler) RemoveCheckpoint(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	checkpointID, err := uuid.Parse(c.Param("checkpointID"))
	if err != nil {
		return utils.BadRequestResponse(c, "checkpoint ID must be a valid UUID")
	}

	if err := h.checkpointUC.RemoveCheckpoint(c.Request().Context(), callerID, checkpointID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackCheckpointRemoved,
		"Checkpoint removed successfully", nil)
}

// UnsubscribeCheckpoint handles a passenger withdrawing their own checkpoint
func (h *CheckpointHandler) UnsubscribeCheckpoint(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	checkpointID, err := uuid.Parse(c.Param("checkpointID"))
	if err != nil {
		return utils.BadRequestResponse(c, "checkpoint ID must be a valid UUID")
	}

	if err := h.checkpointUC.UnsubscribeCheckpoint(c.Request().Context(), callerID, checkpointID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackCheckpointUnsubscribed,
		"Checkpoint subscription withdrawn", nil)
}

// ListRouteCheckpoints returns the checkpoints the caller may see on a route
func (h *CheckpointHandler) ListRouteCheckpoints(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing caller identity")
	}

	routeID, err := uuid.Parse(c.Param("routeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "route ID must be a valid UUID")
	}

	list, err := h.checkpointUC.ListRouteCheckpoints(c.Request().Context(), callerID, routeID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, constants.FeedbackCheckpointList,
		"Checkpoints retrieved successfully", list)
}
