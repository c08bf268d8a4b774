package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cropool/backend/internal/pkg/apperrors"
	"github.com/cropool/backend/internal/pkg/models"
	"github.com/cropool/backend/services/checkpoints/mocks"
)

type checkpointUCMocks struct {
	repo        *mocks.MockCheckpointRepo
	routeSource *mocks.MockRouteSource
	userSource  *mocks.MockUserSource
	gateway     *mocks.MockCheckpointGW
}

func setupCheckpointUC(t *testing.T) (*gomock.Controller, checkpointUCMocks, *checkpointUC) {
	ctrl := gomock.NewController(t)

	m := checkpointUCMocks{
		repo:        mocks.NewMockCheckpointRepo(ctrl),
		routeSource: mocks.NewMockRouteSource(ctrl),
		userSource:  mocks.NewMockUserSource(ctrl),
		gateway:     mocks.NewMockCheckpointGW(ctrl),
	}

	uc := NewCheckpointUC(&models.Config{}, m.repo, m.routeSource, m.userSource, m.gateway).(*checkpointUC)

	return ctrl, m, uc
}

func requestedCheckpoint(routeID, passengerID uuid.UUID) *models.Checkpoint {
	return &models.Checkpoint{
		ID:          uuid.New(),
		RouteID:     routeID,
		PassengerID: passengerID,
		Pickup:      models.Coordinate{Latitude: 45.80, Longitude: 15.97},
		Dropoff:     models.Coordinate{Latitude: 45.75, Longitude: 15.95},
		Status:      models.CheckpointStatusRequested,
	}
}

func TestCreateCheckpoint_Success(t *testing.T) {
	// Arrange
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	passengerID := uuid.New()
	routeID := uuid.New()

	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: ownerID}, nil)
	m.repo.EXPECT().
		ListByRouteAndPassenger(gomock.Any(), routeID, passengerID).
		Return(nil, nil)
	m.repo.EXPECT().
		CreateCheckpoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cp *models.Checkpoint) error {
			assert.Equal(t, passengerID, cp.PassengerID)
			assert.Equal(t, models.CheckpointStatusRequested, cp.Status)
			assert.NotEqual(t, uuid.Nil, cp.ID)
			return nil
		})
	m.userSource.EXPECT().
		GetProfile(gomock.Any(), passengerID).
		Return(&models.UserProfile{FirstName: "Ivana", LastName: "Kovac"}, nil)
	m.gateway.EXPECT().
		PublishCheckpointRequested(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.NotificationEvent) error {
			assert.Equal(t, ownerID, event.RecipientID)
			assert.Contains(t, event.Body, "Ivana Kovac")
			return nil
		})

	checkpoint := &models.Checkpoint{
		RouteID: routeID,
		Pickup:  models.Coordinate{Latitude: 45.80, Longitude: 15.97},
		Dropoff: models.Coordinate{Latitude: 45.75, Longitude: 15.95},
	}

	// Act
	created, err := uc.CreateCheckpoint(context.Background(), passengerID, checkpoint)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, models.CheckpointStatusRequested, created.Status)
}

func TestCreateCheckpoint_OwnerCannotRequestOwnRoute(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	routeID := uuid.New()

	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: ownerID}, nil)

	checkpoint := &models.Checkpoint{
		RouteID: routeID,
		Pickup:  models.Coordinate{Latitude: 45.80, Longitude: 15.97},
		Dropoff: models.Coordinate{Latitude: 45.75, Longitude: 15.95},
	}

	_, err := uc.CreateCheckpoint(context.Background(), ownerID, checkpoint)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateCheckpoint_SecondRequestOnSameRouteRejected(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	routeID := uuid.New()

	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: uuid.New()}, nil)
	m.repo.EXPECT().
		ListByRouteAndPassenger(gomock.Any(), routeID, passengerID).
		Return([]*models.Checkpoint{requestedCheckpoint(routeID, passengerID)}, nil)

	checkpoint := &models.Checkpoint{
		RouteID: routeID,
		Pickup:  models.Coordinate{Latitude: 45.80, Longitude: 15.97},
		Dropoff: models.Coordinate{Latitude: 45.75, Longitude: 15.95},
	}

	_, err := uc.CreateCheckpoint(context.Background(), passengerID, checkpoint)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateCheckpoint_RouteNotFound(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	routeID := uuid.New()

	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(nil, apperrors.ErrNotFound)

	checkpoint := &models.Checkpoint{
		RouteID: routeID,
		Pickup:  models.Coordinate{Latitude: 45.80, Longitude: 15.97},
		Dropoff: models.Coordinate{Latitude: 45.75, Longitude: 15.95},
	}

	_, err := uc.CreateCheckpoint(context.Background(), uuid.New(), checkpoint)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateCheckpoint_PlaceholderNameWhenProfileLookupFails(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	passengerID := uuid.New()
	routeID := uuid.New()

	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: ownerID}, nil)
	m.repo.EXPECT().
		ListByRouteAndPassenger(gomock.Any(), routeID, passengerID).
		Return(nil, nil)
	m.repo.EXPECT().CreateCheckpoint(gomock.Any(), gomock.Any()).Return(nil)
	m.userSource.EXPECT().
		GetProfile(gomock.Any(), passengerID).
		Return(nil, apperrors.WrapStorage(errors.New("connection refused")))
	m.gateway.EXPECT().
		PublishCheckpointRequested(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.NotificationEvent) error {
			assert.Contains(t, event.Body, "A carpool user")
			return nil
		})

	checkpoint := &models.Checkpoint{
		RouteID: routeID,
		Pickup:  models.Coordinate{Latitude: 45.80, Longitude: 15.97},
		Dropoff: models.Coordinate{Latitude: 45.75, Longitude: 15.95},
	}

	_, err := uc.CreateCheckpoint(context.Background(), passengerID, checkpoint)

	assert.NoError(t, err)
}

func TestAcceptCheckpoint_Success(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	passengerID := uuid.New()
	routeID := uuid.New()
	cp := requestedCheckpoint(routeID, passengerID)

	m.repo.EXPECT().GetCheckpoint(gomock.Any(), cp.ID).Return(cp, nil)
	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: ownerID, MaxPassengers: 2}, nil)
	m.repo.EXPECT().AcceptCheckpoint(gomock.Any(), cp.ID).Return(nil)
	m.userSource.EXPECT().
		GetProfile(gomock.Any(), ownerID).
		Return(&models.UserProfile{FirstName: "Marko"}, nil)
	m.gateway.EXPECT().
		PublishCheckpointAccepted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.NotificationEvent) error {
			assert.Equal(t, passengerID, event.RecipientID)
			assert.Contains(t, event.Body, "Marko")
			return nil
		})

	err := uc.AcceptCheckpoint(context.Background(), ownerID, cp.ID)

	assert.NoError(t, err)
}

func TestAcceptCheckpoint_NotOwner(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	routeID := uuid.New()
	cp := requestedCheckpoint(routeID, uuid.New())

	m.repo.EXPECT().GetCheckpoint(gomock.Any(), cp.ID).Return(cp, nil)
	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: uuid.New()}, nil)

	err := uc.AcceptCheckpoint(context.Background(), uuid.New(), cp.ID)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestAcceptCheckpoint_AlreadyAccepted(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	routeID := uuid.New()
	cp := requestedCheckpoint(routeID, uuid.New())
	cp.Status = models.CheckpointStatusAccepted

	m.repo.EXPECT().GetCheckpoint(gomock.Any(), cp.ID).Return(cp, nil)
	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: ownerID}, nil)

	err := uc.AcceptCheckpoint(context.Background(), ownerID, cp.ID)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAcceptCheckpoint_CapacityExceeded(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	routeID := uuid.New()
	cp := requestedCheckpoint(routeID, uuid.New())

	m.repo.EXPECT().GetCheckpoint(gomock.Any(), cp.ID).Return(cp, nil)
	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: ownerID, MaxPassengers: 2}, nil)
	m.repo.EXPECT().
		AcceptCheckpoint(gomock.Any(), cp.ID).
		Return(apperrors.ErrCapacityExceeded)

	err := uc.AcceptCheckpoint(context.Background(), ownerID, cp.ID)

	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
}

func TestAcceptCheckpoint_NotFound(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	checkpointID := uuid.New()

	m.repo.EXPECT().
		GetCheckpoint(gomock.Any(), checkpointID).
		Return(nil, apperrors.ErrNotFound)

	err := uc.AcceptCheckpoint(context.Background(), uuid.New(), checkpointID)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRemoveCheckpoint_Success(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	passengerID := uuid.New()
	routeID := uuid.New()
	cp := requestedCheckpoint(routeID, passengerID)

	m.repo.EXPECT().GetCheckpoint(gomock.Any(), cp.ID).Return(cp, nil)
	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: ownerID}, nil)
	m.repo.EXPECT().DeleteCheckpoint(gomock.Any(), cp.ID).Return(nil)
	m.userSource.EXPECT().
		GetProfile(gomock.Any(), ownerID).
		Return(&models.UserProfile{FirstName: "Marko"}, nil)
	m.gateway.EXPECT().
		PublishCheckpointRemoved(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.NotificationEvent) error {
			assert.Equal(t, passengerID, event.RecipientID)
			return nil
		})

	err := uc.RemoveCheckpoint(context.Background(), ownerID, cp.ID)

	assert.NoError(t, err)
}

func TestRemoveCheckpoint_SecondCallReportsNotFound(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	checkpointID := uuid.New()

	// First removal already archived and deleted the row.
	m.repo.EXPECT().
		GetCheckpoint(gomock.Any(), checkpointID).
		Return(nil, apperrors.ErrNotFound)

	err := uc.RemoveCheckpoint(context.Background(), uuid.New(), checkpointID)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUnsubscribeCheckpoint_Success(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	passengerID := uuid.New()
	routeID := uuid.New()
	cp := requestedCheckpoint(routeID, passengerID)

	m.repo.EXPECT().GetCheckpoint(gomock.Any(), cp.ID).Return(cp, nil)
	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: ownerID}, nil)
	m.repo.EXPECT().DeleteCheckpoint(gomock.Any(), cp.ID).Return(nil)
	m.userSource.EXPECT().
		GetProfile(gomock.Any(), passengerID).
		Return(&models.UserProfile{FirstName: "Ivana"}, nil)
	m.gateway.EXPECT().
		PublishCheckpointUnsubscribed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.NotificationEvent) error {
			assert.Equal(t, ownerID, event.RecipientID)
			assert.Contains(t, event.Body, "Ivana")
			return nil
		})

	err := uc.UnsubscribeCheckpoint(context.Background(), passengerID, cp.ID)

	assert.NoError(t, err)
}

func TestUnsubscribeCheckpoint_NotThePassenger(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	cp := requestedCheckpoint(uuid.New(), uuid.New())

	m.repo.EXPECT().GetCheckpoint(gomock.Any(), cp.ID).Return(cp, nil)

	err := uc.UnsubscribeCheckpoint(context.Background(), uuid.New(), cp.ID)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestListRouteCheckpoints_OwnerSeesAll(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	routeID := uuid.New()

	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: ownerID}, nil)
	m.repo.EXPECT().
		ListByRoute(gomock.Any(), routeID).
		Return([]*models.Checkpoint{requestedCheckpoint(routeID, uuid.New())}, nil)

	list, err := uc.ListRouteCheckpoints(context.Background(), ownerID, routeID)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListRouteCheckpoints_PassengerSeesOwnOnly(t *testing.T) {
	ctrl, m, uc := setupCheckpointUC(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	routeID := uuid.New()

	m.routeSource.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(&models.Route{ID: routeID, OwnerID: uuid.New()}, nil)
	m.repo.EXPECT().
		ListByRouteAndPassenger(gomock.Any(), routeID, passengerID).
		Return([]*models.Checkpoint{requestedCheckpoint(routeID, passengerID)}, nil)

	list, err := uc.ListRouteCheckpoints(context.Background(), passengerID, routeID)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
