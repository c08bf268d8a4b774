package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/apperrors"
)

// ScheduleFilter narrows candidate routes by recurrence pattern.
// CustomOnly selects free-text recurring routes and ignores the other fields.
type ScheduleFilter struct {
	CustomOnly   bool           `json:"custom_only"`
	Mode         RecurrenceMode `json:"mode,omitempty"`
	WeeklyDays   uint8          `json:"weekly_days,omitempty"`
	DayOfMonth   int            `json:"day_of_month,omitempty"`
	HourOfDay    int            `json:"hour_of_day"`
	MinuteOfHour int            `json:"minute_of_hour"`
	ToleranceMin int            `json:"tolerance_min"`
}

// SecondOfDay returns the requested departure time as seconds since midnight.
func (f *ScheduleFilter) SecondOfDay() int {
	return f.HourOfDay*3600 + f.MinuteOfHour*60
}

// Validate checks the filter's field sanity.
func (f *ScheduleFilter) Validate() error {
	if f.CustomOnly {
		return nil
	}
	if f.HourOfDay < 0 || f.HourOfDay > 23 || f.MinuteOfHour < 0 || f.MinuteOfHour > 59 {
		return apperrors.NewValidation("schedule time of day out of range")
	}
	if f.ToleranceMin < 0 {
		return apperrors.NewValidation("schedule tolerance must not be negative")
	}
	switch f.Mode {
	case RecurrenceDaily:
	case RecurrenceWeekly:
		if f.WeeklyDays == 0 || f.WeeklyDays > 0x7F {
			return apperrors.NewValidation("weekly schedule filter requires a non-empty day mask")
		}
	case RecurrenceMonthly:
		if f.DayOfMonth < 1 || f.DayOfMonth > 31 {
			return apperrors.NewValidation("monthly schedule filter requires day_of_month between 1 and 31")
		}
	default:
		return apperrors.NewValidation("unknown recurrence mode in schedule filter")
	}
	return nil
}

// FindRouteRequest is the input to the matching pipeline
type FindRouteRequest struct {
	Pickup     Coordinate      `json:"pickup"`
	Dropoff    Coordinate      `json:"dropoff"`
	MaxPriceKm *float64        `json:"max_price_per_km,omitempty"`
	Schedule   *ScheduleFilter `json:"schedule,omitempty"`
}

// MatchCandidate is a ranked route produced by one find-route call.
// It is derived per request and never persisted.
type MatchCandidate struct {
	RouteID           uuid.UUID `json:"route_id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	OwnerName         string    `json:"owner_name"`
	OwnerPicture      string    `json:"owner_picture,omitempty"`
	BaselineDistanceM float64   `json:"baseline_distance_m"`
	BaselineDurationS int64     `json:"baseline_duration_s"`
	DetourPercent     float64   `json:"detour_percent"`
	Polyline          string    `json:"polyline"`
	PricePerKm        float64   `json:"price_per_km"`
	RouteCreatedAt    time.Time `json:"route_created_at"`
}

// CandidateRoute pairs a route with its owner profile snippet for ranking
type CandidateRoute struct {
	Route        Route  `json:"route"`
	OwnerName    string `json:"owner_name"`
	OwnerPicture string `json:"owner_picture"`

	// AirScore is filled by the air-distance prefilter
	AirScore float64 `json:"-"`
}
