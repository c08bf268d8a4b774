package constants

// NATS subjects for checkpoint notification events
const (
	SubjectCheckpointRequested    = "checkpoint.requested"
	SubjectCheckpointAccepted     = "checkpoint.accepted"
	SubjectCheckpointRemoved      = "checkpoint.removed"
	SubjectCheckpointUnsubscribed = "checkpoint.unsubscribed"
)
