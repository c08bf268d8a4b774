package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/apperrors"
)

// RecurrenceMode identifies how a structured-recurring route repeats
type RecurrenceMode string

const (
	RecurrenceDaily   RecurrenceMode = "DAILY"
	RecurrenceWeekly  RecurrenceMode = "WEEKLY"
	RecurrenceMonthly RecurrenceMode = "MONTHLY"
)

// Weekday bits for the weekly recurrence mask, Monday first
const (
	WeekdayMonday    uint8 = 1 << 0
	WeekdayTuesday   uint8 = 1 << 1
	WeekdayWednesday uint8 = 1 << 2
	WeekdayThursday  uint8 = 1 << 3
	WeekdayFriday    uint8 = 1 << 4
	WeekdaySaturday  uint8 = 1 << 5
	WeekdaySunday    uint8 = 1 << 6
)

// Route represents a driver's recurring origin->destination trip offer.
// A route is either custom-recurring (free-text note, no structured schedule)
// or structured-recurring (mode + schedule fields, no note) - never both.
type Route struct {
	ID                uuid.UUID       `json:"route_id" db:"id"`
	OwnerID           uuid.UUID       `json:"owner_id" db:"owner_id"`
	Start             Coordinate      `json:"start"`
	Finish            Coordinate      `json:"finish"`
	BaselineDistanceM float64         `json:"baseline_distance_m" db:"baseline_distance_m"`
	BaselineDurationS int64           `json:"baseline_duration_s" db:"baseline_duration_s"`
	CustomRecurrence  bool            `json:"custom_recurrence" db:"custom_recurrence"`
	RecurrenceMode    *RecurrenceMode `json:"recurrence_mode,omitempty" db:"recurrence_mode"`
	WeeklyDays        *uint8          `json:"weekly_days,omitempty" db:"weekly_days"`
	DayOfMonth        *int            `json:"day_of_month,omitempty" db:"day_of_month"`
	HourOfDay         *int            `json:"hour_of_day,omitempty" db:"hour_of_day"`
	MinuteOfHour      *int            `json:"minute_of_hour,omitempty" db:"minute_of_hour"`
	Note              *string         `json:"note,omitempty" db:"note"`
	PricePerKm        float64         `json:"price_per_km" db:"price_per_km"`
	MaxPassengers     int             `json:"max_passengers" db:"max_passengers"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}

// Validate enforces the recurrence invariant and basic field sanity.
func (r *Route) Validate() error {
	if r.MaxPassengers < 1 {
		return apperrors.NewValidation("max_passengers must be at least 1")
	}
	if r.PricePerKm < 0 {
		return apperrors.NewValidation("price_per_km must not be negative")
	}

	if r.CustomRecurrence {
		if r.Note == nil || *r.Note == "" {
			return apperrors.NewValidation("custom-recurring route requires a note")
		}
		if r.RecurrenceMode != nil || r.WeeklyDays != nil || r.DayOfMonth != nil ||
			r.HourOfDay != nil || r.MinuteOfHour != nil {
			return apperrors.NewValidation("custom-recurring route must not carry structured schedule fields")
		}
		return nil
	}

	if r.Note != nil {
		return apperrors.NewValidation("structured-recurring route must not carry a note")
	}
	if r.RecurrenceMode == nil || r.HourOfDay == nil || r.MinuteOfHour == nil {
		return apperrors.NewValidation("structured-recurring route requires recurrence mode and time of day")
	}
	if *r.HourOfDay < 0 || *r.HourOfDay > 23 || *r.MinuteOfHour < 0 || *r.MinuteOfHour > 59 {
		return apperrors.NewValidation("time of day out of range")
	}

	switch *r.RecurrenceMode {
	case RecurrenceDaily:
	case RecurrenceWeekly:
		if r.WeeklyDays == nil || *r.WeeklyDays == 0 || *r.WeeklyDays > 0x7F {
			return apperrors.NewValidation("weekly route requires a non-empty day mask")
		}
	case RecurrenceMonthly:
		if r.DayOfMonth == nil || *r.DayOfMonth < 1 || *r.DayOfMonth > 31 {
			return apperrors.NewValidation("monthly route requires day_of_month between 1 and 31")
		}
	default:
		return apperrors.NewValidation("unknown recurrence mode")
	}

	return nil
}

// SecondOfDay returns the route's departure time as seconds since midnight.
// Only meaningful for structured-recurring routes.
func (r *Route) SecondOfDay() int {
	if r.HourOfDay == nil || r.MinuteOfHour == nil {
		return 0
	}
	return *r.HourOfDay*3600 + *r.MinuteOfHour*60
}

// RouteDTO flattens Route for database scans
type RouteDTO struct {
	ID                uuid.UUID       `db:"id"`
	OwnerID           uuid.UUID       `db:"owner_id"`
	StartLatitude     float64         `db:"start_latitude"`
	StartLongitude    float64         `db:"start_longitude"`
	FinishLatitude    float64         `db:"finish_latitude"`
	FinishLongitude   float64         `db:"finish_longitude"`
	BaselineDistanceM float64         `db:"baseline_distance_m"`
	BaselineDurationS int64           `db:"baseline_duration_s"`
	CustomRecurrence  bool            `db:"custom_recurrence"`
	RecurrenceMode    *RecurrenceMode `db:"recurrence_mode"`
	WeeklyDays        *uint8          `db:"weekly_days"`
	DayOfMonth        *int            `db:"day_of_month"`
	HourOfDay         *int            `db:"hour_of_day"`
	MinuteOfHour      *int            `db:"minute_of_hour"`
	Note              *string         `db:"note"`
	PricePerKm        float64         `db:"price_per_km"`
	MaxPassengers     int             `db:"max_passengers"`
	CreatedAt         time.Time       `db:"created_at"`
}

// ToRoute converts a RouteDTO to a Route
func (dto *RouteDTO) ToRoute() *Route {
	return &Route{
		ID:      dto.ID,
		OwnerID: dto.OwnerID,
		Start: Coordinate{
			Latitude:  dto.StartLatitude,
			Longitude: dto.StartLongitude,
		},
		Finish: Coordinate{
			Latitude:  dto.FinishLatitude,
			Longitude: dto.FinishLongitude,
		},
		BaselineDistanceM: dto.BaselineDistanceM,
		BaselineDurationS: dto.BaselineDurationS,
		CustomRecurrence:  dto.CustomRecurrence,
		RecurrenceMode:    dto.RecurrenceMode,
		WeeklyDays:        dto.WeeklyDays,
		DayOfMonth:        dto.DayOfMonth,
		HourOfDay:         dto.HourOfDay,
		MinuteOfHour:      dto.MinuteOfHour,
		Note:              dto.Note,
		PricePerKm:        dto.PricePerKm,
		MaxPassengers:     dto.MaxPassengers,
		CreatedAt:         dto.CreatedAt,
	}
}

// ToDTO converts a Route to a RouteDTO
func (r *Route) ToDTO() *RouteDTO {
	return &RouteDTO{
		ID:                r.ID,
		OwnerID:           r.OwnerID,
		StartLatitude:     r.Start.Latitude,
		StartLongitude:    r.Start.Longitude,
		FinishLatitude:    r.Finish.Latitude,
		FinishLongitude:   r.Finish.Longitude,
		BaselineDistanceM: r.BaselineDistanceM,
		BaselineDurationS: r.BaselineDurationS,
		CustomRecurrence:  r.CustomRecurrence,
		RecurrenceMode:    r.RecurrenceMode,
		WeeklyDays:        r.WeeklyDays,
		DayOfMonth:        r.DayOfMonth,
		HourOfDay:         r.HourOfDay,
		MinuteOfHour:      r.MinuteOfHour,
		Note:              r.Note,
		PricePerKm:        r.PricePerKm,
		MaxPassengers:     r.MaxPassengers,
		CreatedAt:         r.CreatedAt,
	}
}
