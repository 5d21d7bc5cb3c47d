package render_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// WorkshopServiceClient интерфейс клиента WorkshopService
type WorkshopServiceClient interface {
	ListBookings(ctx context.Context, filter domain.CalendarWindowFilter) ([]*domain.Booking, error)
	ListWorkingHours(ctx context.Context, userID int64) ([]domain.WorkingHoursRule, error)
	ListTimeOff(ctx context.Context, userID int64) ([]domain.TimeOffInterval, error)
	ListBayClosures(ctx context.Context, bayID int64, from, to time.Time) ([]domain.BayClosure, error)
}

// Metrics интерфейс метрик usecase (опционален, допускает nil-реализацию)
type Metrics interface {
	ObserveLayoutPass(resourceKind string, duration time.Duration)
	IncRenderCacheEvent(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
