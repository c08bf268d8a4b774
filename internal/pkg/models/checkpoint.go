package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckpointStatus represents the current status of a checkpoint
type CheckpointStatus string

const (
	CheckpointStatusRequested CheckpointStatus = "REQUESTED"
	CheckpointStatusAccepted  CheckpointStatus = "ACCEPTED"
)

// Checkpoint represents a passenger's pickup/dropoff pairing attached to a route
type Checkpoint struct {
	ID          uuid.UUID        `json:"checkpoint_id" db:"id"`
	RouteID     uuid.UUID        `json:"route_id" db:"route_id"`
	PassengerID uuid.UUID        `json:"passenger_id" db:"passenger_id"`
	Pickup      Coordinate       `json:"pickup"`
	Dropoff     Coordinate       `json:"dropoff"`
	Status      CheckpointStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

// CheckpointDTO flattens Checkpoint for database scans
type CheckpointDTO struct {
	ID               uuid.UUID        `db:"id"`
	RouteID          uuid.UUID        `db:"route_id"`
	PassengerID      uuid.UUID        `db:"passenger_id"`
	PickupLatitude   float64          `db:"pickup_latitude"`
	PickupLongitude  float64          `db:"pickup_longitude"`
	DropoffLatitude  float64          `db:"dropoff_latitude"`
	DropoffLongitude float64          `db:"dropoff_longitude"`
	Status           CheckpointStatus `db:"status"`
	CreatedAt        time.Time        `db:"created_at"`
}

// ToCheckpoint converts a CheckpointDTO to a Checkpoint
func (dto *CheckpointDTO) ToCheckpoint() *Checkpoint {
	return &Checkpoint{
		ID:          dto.ID,
		RouteID:     dto.RouteID,
		PassengerID: dto.PassengerID,
		Pickup: Coordinate{
			Latitude:  dto.PickupLatitude,
			Longitude: dto.PickupLongitude,
		},
		Dropoff: Coordinate{
			Latitude:  dto.DropoffLatitude,
			Longitude: dto.DropoffLongitude,
		},
		Status:    dto.Status,
		CreatedAt: dto.CreatedAt,
	}
}
