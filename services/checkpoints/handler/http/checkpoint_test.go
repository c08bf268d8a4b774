package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/services/checkpoints/mocks"
)

func newCheckpointContext(t *testing.T, method, target, body string, callerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", callerID)
	return c, rec
}

func TestCreateCheckpointHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCheckpointUC := mocks.NewMockCheckpointUC(ctrl)
	handler := NewCheckpointHandler(mockCheckpointUC)

	callerID := uuid.New()
	routeID := uuid.New()
	requestBody := `{
		"route_id": "` + routeID.String() + `",
		"pickup": {"latitude": 45.8000, "longitude": 15.9700},
		"dropoff": {"latitude": 45.7500, "longitude": 15.9500}
	}`
	c, rec := newCheckpointContext(t, http.MethodPost, "/checkpoint", requestBody, callerID)

	mockCheckpointUC.EXPECT().
		CreateCheckpoint(gomock.Any(), callerID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, checkpoint *models.Checkpoint) (*models.Checkpoint, error) {
			assert.Equal(t, routeID, checkpoint.RouteID)
			checkpoint.ID = uuid.New()
			checkpoint.Status = models.CheckpointStatusRequested
			return checkpoint, nil
		})

	// Act
	err := handler.CreateCheckpoint(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "checkpoint_requested", response["feedback"])
}

func TestCreateCheckpointHandler_MissingRouteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCheckpointHandler(mocks.NewMockCheckpointUC(ctrl))

	requestBody := `{"pickup": {"latitude": 45.8, "longitude": 15.97}}`
	c, rec := newCheckpointContext(t, http.MethodPost, "/checkpoint", requestBody, uuid.New())

	err := handler.CreateCheckpoint(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptCheckpointHandler_CapacityMapsTo409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCheckpointUC := mocks.NewMockCheckpointUC(ctrl)
	handler := NewCheckpointHandler(mockCheckpointUC)

	callerID := uuid.New()
	checkpointID := uuid.New()
	c, rec := newCheckpointContext(t, http.MethodPost,
		"/checkpoint/"+checkpointID.String()+"/accept", "", callerID)
	c.SetParamNames("checkpointID")
	c.SetParamValues(checkpointID.String())

	mockCheckpointUC.EXPECT().
		AcceptCheckpoint(gomock.Any(), callerID, checkpointID).
		Return(apperrors.ErrCapacityExceeded)

	err := handler.AcceptCheckpoint(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcceptCheckpointHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCheckpointUC := mocks.NewMockCheckpointUC(ctrl)
	handler := NewCheckpointHandler(mockCheckpointUC)

	callerID := uuid.New()
	checkpointID := uuid.New()
	c, rec := newCheckpointContext(t, http.MethodPost,
		"/checkpoint/"+checkpointID.String()+"/accept", "", callerID)
	c.SetParamNames("checkpointID")
	c.SetParamValues(checkpointID.String())

	mockCheckpointUC.EXPECT().
		AcceptCheckpoint(gomock.Any(), callerID, checkpointID).
		Return(nil)

	err := handler.AcceptCheckpoint(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "checkpoint_accepted", response["feedback"])
}

func TestRemoveCheckpointHandler_NotOwnerMapsTo403(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCheckpointUC := mocks.NewMockCheckpointUC(ctrl)
	handler := NewCheckpointHandler(mockCheckpointUC)

	callerID := uuid.New()
	checkpointID := uuid.New()
	c, rec := newCheckpointContext(t, http.MethodDelete,
		"/checkpoint/"+checkpointID.String(), "", callerID)
	c.SetParamNames("checkpointID")
	c.SetParamValues(checkpointID.String())

	mockCheckpointUC.EXPECT().
		RemoveCheckpoint(gomock.Any(), callerID, checkpointID).
		Return(apperrors.ErrForbidden)

	err := handler.RemoveCheckpoint(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnsubscribeCheckpointHandler_BadUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCheckpointHandler(mocks.NewMockCheckpointUC(ctrl))

	c, rec := newCheckpointContext(t, http.MethodDelete,
		"/checkpoint/not-a-uuid/subscription", "", uuid.New())
	c.SetParamNames("checkpointID")
	c.SetParamValues("not-a-uuid")

	err := handler.UnsubscribeCheckpoint(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRouteCheckpointsHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCheckpointUC := mocks.NewMockCheckpointUC(ctrl)
	handler := NewCheckpointHandler(mockCheckpointUC)

	callerID := uuid.New()
	routeID := uuid.New()
	c, rec := newCheckpointContext(t, http.MethodGet,
		"/checkpoint/route/"+routeID.String(), "", callerID)
	c.SetParamNames("routeID")
	c.SetParamValues(routeID.String())

	mockCheckpointUC.EXPECT().
		ListRouteCheckpoints(gomock.Any(), callerID, routeID).
		Return([]*models.Checkpoint{
			{ID: uuid.New(), RouteID: routeID, Status: models.CheckpointStatusAccepted},
		}, nil)

	err := handler.ListRouteCheckpoints(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "checkpoint_list", response["feedback"])

	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 1)
}

func TestListRouteCheckpointsHandler_MissingCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCheckpointHandler(mocks.NewMockCheckpointUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/checkpoint/route/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListRouteCheckpoints(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
