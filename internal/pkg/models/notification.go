package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationEvent is published on the notification broker when a checkpoint
// changes hands. Delivery to the recipient's device is a downstream concern.
type NotificationEvent struct {
	RecipientID  uuid.UUID `json:"recipient_id"`
	RouteID      uuid.UUID `json:"route_id"`
	CheckpointID uuid.UUID `json:"checkpoint_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
}
