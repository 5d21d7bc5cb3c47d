package apply_gesture

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.WorkshopID <= 0 {
		return fmt.Errorf("%w: workshopID must be positive", ErrInvalidInput)
	}

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	if req.DateTo.Before(req.DateFrom) {
		return fmt.Errorf("%w: dateTo must not be before dateFrom", ErrInvalidInput)
	}

	days := int(req.DateTo.Sub(req.DateFrom).Hours()/24) + 1
	if days > domain.MaxCalendarRangeDays {
		return fmt.Errorf("%w: %d days requested, maximum is %d", ErrInvalidInput, days, domain.MaxCalendarRangeDays)
	}

	if len(req.Events) == 0 {
		return fmt.Errorf("%w: pointer trace is empty", ErrInvalidInput)
	}

	for i, ev := range req.Events {
		switch ev.Type {
		case EventDown, EventMove, EventUp, EventClick:
		default:
			return fmt.Errorf("%w: event %d has unknown type %q", ErrInvalidInput, i, ev.Type)
		}
	}

	if req.Target != nil && req.Target.BookingID <= 0 {
		return fmt.Errorf("%w: target bookingID must be positive", ErrInvalidInput)
	}

	return nil
}
