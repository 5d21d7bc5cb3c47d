package apply_gesture

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// WorkshopServiceClient интерфейс клиента WorkshopService
type WorkshopServiceClient interface {
	UpdateBookingTime(ctx context.Context, id int64, startAt, endAt time.Time) (*domain.Booking, error)
}

// Metrics интерфейс метрик usecase (опционален, допускает nil-реализацию)
type Metrics interface {
	IncGestureCommit(mode, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
