package workshopservice

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// BayBooking модель бронирования бокса из WorkshopService
// Временные поля передаются как ISO-8601 моменты
type BayBooking struct {
	ID             int64   `json:"id"`
	WorkshopID     int64   `json:"workshop_id"`
	BayID          int64   `json:"bay_id"`
	AssignedUserID *int64  `json:"assigned_user_id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`

	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`

	BufferBeforeMin int `json:"buffer_before_min"`
	BufferAfterMin  int `json:"buffer_after_min"`

	Status     string  `json:"status"`
	ChainToken *string `json:"chain_token"`

	CustomerID    *int64 `json:"customer_id"`
	CarID         *int64 `json:"car_id"`
	ServiceItemID *int64 `json:"service_item_id"`

	PriceGrossOre *int64  `json:"price_gross_ore"`
	FinalPriceOre *int64  `json:"final_price_ore"`
	PriceIsCustom *bool   `json:"price_is_custom"`
	PriceNote     *string `json:"price_note"`

	Source *string `json:"source"`
}

// ToDomain конвертирует wire-модель в доменную с разбором временных полей
func (b *BayBooking) ToDomain() (*domain.Booking, error) {
	startAt, err := time.Parse(time.RFC3339, b.StartAt)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%d has invalid start_at %q", ErrInvalidResponse, b.ID, b.StartAt)
	}
	endAt, err := time.Parse(time.RFC3339, b.EndAt)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%d has invalid end_at %q", ErrInvalidResponse, b.ID, b.EndAt)
	}

	return &domain.Booking{
		ID:              b.ID,
		WorkshopID:      b.WorkshopID,
		BayID:           b.BayID,
		AssignedUserID:  b.AssignedUserID,
		Title:           b.Title,
		Description:     b.Description,
		StartAt:         startAt,
		EndAt:           endAt,
		BufferBeforeMin: b.BufferBeforeMin,
		BufferAfterMin:  b.BufferAfterMin,
		Status:          domain.BookingStatus(b.Status),
		ChainToken:      b.ChainToken,
		CustomerID:      b.CustomerID,
		CarID:           b.CarID,
		ServiceItemID:   b.ServiceItemID,
		PriceGrossOre:   b.PriceGrossOre,
		FinalPriceOre:   b.FinalPriceOre,
		PriceIsCustom:   b.PriceIsCustom,
		PriceNote:       b.PriceNote,
		Source:          b.Source,
	}, nil
}

// UpdateBookingTimeRequest тело запроса на обновление времени бронирования
// Отправляются только изменившиеся временные поля
type UpdateBookingTimeRequest struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// WorkingHoursRule модель правила рабочих часов сотрудника
// weekday: 0=понедельник .. 6=воскресенье
type WorkingHoursRule struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Weekday   int     `json:"weekday"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	ValidFrom *string `json:"valid_from"`
	ValidTo   *string `json:"valid_to"`
}

// ToDomain конвертирует wire-модель правила в доменную
func (r *WorkingHoursRule) ToDomain() (*domain.WorkingHoursRule, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: rule id=%d has invalid start_time: %v", ErrInvalidResponse, r.ID, err)
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: rule id=%d has invalid end_time: %v", ErrInvalidResponse, r.ID, err)
	}

	rule := &domain.WorkingHoursRule{
		ID:        r.ID,
		UserID:    r.UserID,
		Weekday:   r.Weekday,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if r.ValidFrom != nil {
		from, err := time.Parse(domain.DateFormat, *r.ValidFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: rule id=%d has invalid valid_from %q", ErrInvalidResponse, r.ID, *r.ValidFrom)
		}
		rule.ValidFrom = &from
	}
	if r.ValidTo != nil {
		to, err := time.Parse(domain.DateFormat, *r.ValidTo)
		if err != nil {
			return nil, fmt.Errorf("%w: rule id=%d has invalid valid_to %q", ErrInvalidResponse, r.ID, *r.ValidTo)
		}
		rule.ValidTo = &to
	}

	return rule, nil
}

// TimeOff модель интервала отсутствия сотрудника
type TimeOff struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"user_id"`
	StartAt string  `json:"start_at"`
	EndAt   string  `json:"end_at"`
	Type    string  `json:"type"`
	Reason  *string `json:"reason"`
}

// ToDomain конвертирует wire-модель отсутствия в доменную
func (t *TimeOff) ToDomain() (*domain.TimeOffInterval, error) {
	startAt, err := time.Parse(time.RFC3339, t.StartAt)
	if err != nil {
		return nil, fmt.Errorf("%w: time off id=%d has invalid start_at %q", ErrInvalidResponse, t.ID, t.StartAt)
	}
	endAt, err := time.Parse(time.RFC3339, t.EndAt)
	if err != nil {
		return nil, fmt.Errorf("%w: time off id=%d has invalid end_at %q", ErrInvalidResponse, t.ID, t.EndAt)
	}

	return &domain.TimeOffInterval{
		ID:      t.ID,
		UserID:  t.UserID,
		StartAt: startAt,
		EndAt:   endAt,
		Type:    domain.TimeOffType(t.Type),
		Reason:  t.Reason,
	}, nil
}

// BayClosure модель закрытия бокса
type BayClosure struct {
	ID      int64   `json:"id"`
	BayID   int64   `json:"bay_id"`
	StartAt string  `json:"start_at"`
	EndAt   string  `json:"end_at"`
	Reason  *string `json:"reason"`
}

// ToDomain конвертирует wire-модель закрытия в доменную
func (c *BayClosure) ToDomain() (*domain.BayClosure, error) {
	startAt, err := time.Parse(time.RFC3339, c.StartAt)
	if err != nil {
		return nil, fmt.Errorf("%w: closure id=%d has invalid start_at %q", ErrInvalidResponse, c.ID, c.StartAt)
	}
	endAt, err := time.Parse(time.RFC3339, c.EndAt)
	if err != nil {
		return nil, fmt.Errorf("%w: closure id=%d has invalid end_at %q", ErrInvalidResponse, c.ID, c.EndAt)
	}

	return &domain.BayClosure{
		ID:      c.ID,
		BayID:   c.BayID,
		StartAt: startAt,
		EndAt:   endAt,
		Reason:  c.Reason,
	}, nil
}

// ErrorResponse модель ошибки от WorkshopService
type ErrorResponse struct {
	Detail string `json:"detail"`
}
