package repository

import (
	"fmt"
	"strings"

	"github.com/cropool/backend/internal/pkg/models"
)

// predicate collects optional filter clauses in a fixed, documented order so
// the mapping between filters present and parameters bound stays auditable.
// Each clause uses ? markers that Build renumbers into $n placeholders.
type predicate struct {
	clauses []clause
}

type clause struct {
	cond string
	args []interface{}
}

func (p *predicate) add(cond string, args ...interface{}) {
	p.clauses = append(p.clauses, clause{cond: cond, args: args})
}

// Build renders the clauses as " AND c1 AND c2 ..." with placeholders numbered
// from next upward, and returns the bound arguments in clause order.
func (p *predicate) Build(next int) (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	for _, c := range p.clauses {
		cond := c.cond
		for range c.args {
			cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", next), 1)
			next++
		}
		sb.WriteString(" AND ")
		sb.WriteString(cond)
		args = append(args, c.args...)
	}

	return sb.String(), args
}

// scheduleClauses appends the recurrence filter clauses for a requested
// schedule. Clause order: recurrence kind, day selector, time-of-day window.
// Daily/weekly compare in seconds of day, monthly in minutes of day; the
// tolerance window is symmetric. Weekly day masks compare by exact equality
// unless weeklyOverlap selects any-common-day semantics.
func scheduleClauses(p *predicate, f *models.ScheduleFilter, weeklyOverlap bool) {
	if f.CustomOnly {
		p.add("r.custom_recurrence = TRUE")
		return
	}

	p.add("r.custom_recurrence = FALSE")
	p.add("r.recurrence_mode = ?", string(f.Mode))

	switch f.Mode {
	case models.RecurrenceWeekly:
		if weeklyOverlap {
			p.add("(r.weekly_days & ?) <> 0", int(f.WeeklyDays))
		} else {
			p.add("r.weekly_days = ?", int(f.WeeklyDays))
		}
	case models.RecurrenceMonthly:
		p.add("r.day_of_month = ?", f.DayOfMonth)
	}

	if f.Mode == models.RecurrenceMonthly {
		p.add("ABS((r.hour_of_day * 60 + r.minute_of_hour) - ?) <= ?",
			f.HourOfDay*60+f.MinuteOfHour, f.ToleranceMin)
	} else {
		p.add("ABS((r.hour_of_day * 3600 + r.minute_of_hour * 60) - ?) <= ?",
			f.SecondOfDay(), f.ToleranceMin*60)
	}
}
