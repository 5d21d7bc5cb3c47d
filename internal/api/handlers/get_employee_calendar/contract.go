package get_employee_calendar

import (
	"context"

	renderCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/render_calendar"
)

type RenderCalendarUseCase interface {
	Execute(ctx context.Context, req *renderCalendar.Request) (*renderCalendar.RenderModel, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
