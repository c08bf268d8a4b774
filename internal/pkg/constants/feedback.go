package constants

// Feedback codes returned in every API response. Symbolic, never raw errors.
const (
	FeedbackUserRegistered   = "user_registered"
	FeedbackEmailUnavailable = "e_mail_unavailable"
	FeedbackUserNotFound     = "user_not_found"
	FeedbackUserFound        = "user_found"
	FeedbackWrongPassword    = "wrong_password"
	FeedbackTokenIssued      = "token_issued"
	FeedbackTokenInactive    = "token_inactive"
	FeedbackLoggedOut        = "logged_out"

	FeedbackRouteCreated = "route_created"
	FeedbackRouteDeleted = "route_deleted"
	FeedbackRouteList    = "route_list"
	FeedbackRoutesFound  = "routes_found"

	FeedbackCheckpointRequested    = "checkpoint_requested"
	FeedbackCheckpointAccepted     = "checkpoint_accepted"
	FeedbackCheckpointRemoved      = "checkpoint_removed"
	FeedbackCheckpointUnsubscribed = "checkpoint_unsubscribed"
	FeedbackCheckpointList         = "checkpoint_list"
	FeedbackCapacityExceeded       = "capacity_exceeded"

	FeedbackInvalidRequest = "invalid_request"
	FeedbackForbidden      = "forbidden"
	FeedbackNotFound       = "not_found"
	FeedbackDatabaseError  = "database_error"
	FeedbackExternalError  = "external_service_error"
)
