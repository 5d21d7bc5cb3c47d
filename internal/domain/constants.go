package domain

// Grid and gesture defaults
const (
	DefaultSnapStepMinutes         = 15
	DefaultCreateDurationMinutes   = 60
	MinCreateDurationMinutes       = 30
	DefaultPixelsPerHour           = 52
	ResizeMarginPx                 = 8.0
	ClickTolerancePx               = 4.0
	StackOffsetPx                  = 10.0
)

// Minimum visual heights (presentation contract, not a time-model change)
const (
	MinBookingHeightPx = 18.0
	MinSegmentHeightPx = 6.0
	MinOverlayHeightPx = 12.0
)

// Business validation constants
const (
	MaxCalendarRangeDays = 31
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих время в календаре
// Используется при фильтрации, когда include_cancelled выключен
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих время в календаре
var ActiveStatuses = []BookingStatus{
	StatusBooked,
	StatusInProgress,
	StatusCompleted,
}
