package render_calendar

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const fallbackTitle = "(untitled booking)"

// knownStatuses допустимые статусы бронирования
var knownStatuses = map[domain.BookingStatus]struct{}{
	domain.StatusBooked:     {},
	domain.StatusInProgress: {},
	domain.StatusCompleted:  {},
	domain.StatusCancelled:  {},
	domain.StatusNoShow:     {},
}

// normalizeBookings приводит сырые записи к полностью заполненной
// view-модели с определенными дефолтами - один явный проход на выборку
// вместо ad-hoc подстановок на каждом месте рендера
//
// Правила:
//   - пустой title получает видимый fallback
//   - неизвестный статус трактуется как booked (время слот занимает)
//   - отмененные бронирования отбрасываются, если не запрошены явно
func normalizeBookings(raw []*domain.Booking, includeCancelled bool) []*domain.Booking {
	normalized := make([]*domain.Booking, 0, len(raw))

	for _, b := range raw {
		nb := *b

		if nb.Title == "" {
			nb.Title = fallbackTitle
		}

		if _, known := knownStatuses[nb.Status]; !known {
			nb.Status = domain.StatusBooked
		}

		if !includeCancelled && nb.IsCancelled() {
			continue
		}

		normalized = append(normalized, &nb)
	}

	return normalized
}
