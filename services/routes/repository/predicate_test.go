package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cropool/backend/internal/pkg/models"
)

func TestPredicateBuild_RenumbersPlaceholders(t *testing.T) {
	p := &predicate{}
	p.add("r.a = ?", 1)
	p.add("r.b BETWEEN ? AND ?", 2, 3)

	where, args := p.Build(4)

	assert.Equal(t, " AND r.a = $4 AND r.b BETWEEN $5 AND $6", where)
	assert.Equal(t, []interface{}{1, 2, 3}, args)
}

func TestPredicateBuild_Empty(t *testing.T) {
	p := &predicate{}

	where, args := p.Build(2)

	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestScheduleClauses_CustomOnly(t *testing.T) {
	p := &predicate{}
	scheduleClauses(p, &models.ScheduleFilter{CustomOnly: true}, false)

	where, args := p.Build(2)

	assert.Equal(t, " AND r.custom_recurrence = TRUE", where)
	assert.Empty(t, args)
}

func TestScheduleClauses_DailyComparesSecondsOfDay(t *testing.T) {
	p := &predicate{}
	scheduleClauses(p, &models.ScheduleFilter{
		Mode:         models.RecurrenceDaily,
		HourOfDay:    8,
		MinuteOfHour: 30,
		ToleranceMin: 15,
	}, false)

	where, args := p.Build(2)

	assert.Equal(t,
		" AND r.custom_recurrence = FALSE"+
			" AND r.recurrence_mode = $2"+
			" AND ABS((r.hour_of_day * 3600 + r.minute_of_hour * 60) - $3) <= $4",
		where)
	assert.Equal(t, []interface{}{"DAILY", 8*3600 + 30*60, 15 * 60}, args)
}

func TestScheduleClauses_WeeklyExactMask(t *testing.T) {
	mask := models.WeekdayMonday | models.WeekdayWednesday

	p := &predicate{}
	scheduleClauses(p, &models.ScheduleFilter{
		Mode:         models.RecurrenceWeekly,
		WeeklyDays:   mask,
		HourOfDay:    7,
		MinuteOfHour: 0,
		ToleranceMin: 10,
	}, false)

	where, args := p.Build(2)

	assert.Contains(t, where, "r.weekly_days = $3")
	assert.Equal(t, []interface{}{"WEEKLY", int(mask), 7 * 3600, 10 * 60}, args)
}

func TestScheduleClauses_WeeklyOverlapMask(t *testing.T) {
	mask := models.WeekdayFriday

	p := &predicate{}
	scheduleClauses(p, &models.ScheduleFilter{
		Mode:         models.RecurrenceWeekly,
		WeeklyDays:   mask,
		HourOfDay:    7,
		MinuteOfHour: 0,
		ToleranceMin: 10,
	}, true)

	where, _ := p.Build(2)

	assert.Contains(t, where, "(r.weekly_days & $3) <> 0")
}

func TestScheduleClauses_MonthlyComparesMinutesOfDay(t *testing.T) {
	p := &predicate{}
	scheduleClauses(p, &models.ScheduleFilter{
		Mode:         models.RecurrenceMonthly,
		DayOfMonth:   15,
		HourOfDay:    18,
		MinuteOfHour: 45,
		ToleranceMin: 20,
	}, false)

	where, args := p.Build(2)

	assert.Contains(t, where, "r.day_of_month = $3")
	assert.Contains(t, where, "ABS((r.hour_of_day * 60 + r.minute_of_hour) - $4) <= $5")
	assert.Equal(t, []interface{}{"MONTHLY", 15, 18*60 + 45, 20}, args)
}
