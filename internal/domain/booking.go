package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the status of a bay booking
type BookingStatus string

const (
	StatusBooked     BookingStatus = "booked"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// Booking represents one bay booking in the workshop calendar.
// Bookings sharing a ChainToken are parts of one logical multi-part job
// (e.g. a repair split across days or bays); a booking without a token
// forms a singleton chain of its own.
//
// Invariant: StartAt < EndAt (guaranteed by the backend of record,
// not re-validated here).
type Booking struct {
	ID             int64
	WorkshopID     int64
	BayID          int64
	AssignedUserID *int64

	Title       string
	Description *string

	StartAt time.Time
	EndAt   time.Time

	BufferBeforeMin int
	BufferAfterMin  int

	Status     BookingStatus
	ChainToken *string

	CustomerID    *int64
	CarID         *int64
	ServiceItemID *int64

	// Pricing carried by at most one part of a chain (the master part)
	PriceGrossOre *int64
	FinalPriceOre *int64
	PriceIsCustom *bool
	PriceNote     *string

	Source *string
}

// IsActive returns true if the booking still occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsCancelled returns true if the booking has been cancelled or was a no-show
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled || b.Status == StatusNoShow
}

// HasPricing returns true if this part carries pricing information,
// which makes it the preferred master of its chain
func (b *Booking) HasPricing() bool {
	return b.PriceGrossOre != nil || b.FinalPriceOre != nil
}

// DurationMinutes returns the booking duration in whole minutes
func (b *Booking) DurationMinutes() int {
	return int(b.EndAt.Sub(b.StartAt) / time.Minute)
}

// ChainKey returns the grouping key of the booking:
// "chain:<token>" for linked parts, "single:<id>" for standalone bookings
func (b *Booking) ChainKey() string {
	if b.ChainToken != nil && *b.ChainToken != "" {
		return "chain:" + *b.ChainToken
	}
	return fmt.Sprintf("single:%d", b.ID)
}

// CalendarWindowFilter describes the time-windowed booking fetch for
// one calendar view. Exactly one of BayID / AssignedUserID is set.
type CalendarWindowFilter struct {
	WorkshopID       int64
	BayID            *int64
	AssignedUserID   *int64
	DateFrom         time.Time
	DateTo           time.Time
	IncludeCancelled bool
}
