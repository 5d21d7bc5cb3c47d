package render_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Kind != KindBay && req.Kind != KindEmployee {
		return fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, req.Kind)
	}

	if req.WorkshopID <= 0 {
		return fmt.Errorf("%w: workshopID must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	if req.DateTo.Before(req.DateFrom) {
		return fmt.Errorf("%w: dateTo must not be before dateFrom", ErrInvalidInput)
	}

	days := int(req.DateTo.Sub(req.DateFrom).Hours()/24) + 1
	if days > domain.MaxCalendarRangeDays {
		return fmt.Errorf("%w: %d days requested, maximum is %d", ErrRangeTooWide, days, domain.MaxCalendarRangeDays)
	}

	return nil
}
