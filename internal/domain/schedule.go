package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// TimeOffType represents the kind of an employee absence
type TimeOffType string

const (
	TimeOffVacation TimeOffType = "vacation"
	TimeOffSick     TimeOffType = "sick"
	TimeOffTraining TimeOffType = "training"
	TimeOffOther    TimeOffType = "other"
)

// WorkingHoursRule is a recurring work shift for one employee.
// Weekday follows the workshop backend convention: 0=Monday .. 6=Sunday.
// Several rules may apply to the same weekday (morning/afternoon split).
type WorkingHoursRule struct {
	ID        int64
	UserID    int64
	Weekday   int
	StartTime types.TimeString
	EndTime   types.TimeString

	// Optional validity window of the schedule (date-only bounds)
	ValidFrom *time.Time
	ValidTo   *time.Time
}

// AppliesOn returns true if the rule is in effect on the given calendar date:
// the weekday matches and the date falls inside the valid_from/valid_to
// bounds when they are present
func (r *WorkingHoursRule) AppliesOn(date time.Time) bool {
	if backendWeekday(date.Weekday()) != r.Weekday {
		return false
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if r.ValidFrom != nil {
		from := time.Date(r.ValidFrom.Year(), r.ValidFrom.Month(), r.ValidFrom.Day(), 0, 0, 0, 0, date.Location())
		if day.Before(from) {
			return false
		}
	}
	if r.ValidTo != nil {
		to := time.Date(r.ValidTo.Year(), r.ValidTo.Month(), r.ValidTo.Day(), 0, 0, 0, 0, date.Location())
		if day.After(to) {
			return false
		}
	}
	return true
}

// TimeOffInterval is a single absence interval (vacation, sick leave, ...)
// carrying absolute instants, independent of any weekday schedule.
//
// Invariant: StartAt < EndAt.
type TimeOffInterval struct {
	ID      int64
	UserID  int64
	StartAt time.Time
	EndAt   time.Time
	Type    TimeOffType
	Reason  *string
}

// BayClosure is an interval during which a bay is closed for bookings
// (maintenance, blocked equipment). Rendered as a background overlay
// in the bay view, same mechanics as time off in the employee view.
type BayClosure struct {
	ID      int64
	BayID   int64
	StartAt time.Time
	EndAt   time.Time
	Reason  *string
}

// backendWeekday converts Go's time.Weekday (0=Sunday) to the workshop
// backend convention (0=Monday .. 6=Sunday)
func backendWeekday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
