package apply_gesture

import (
	"context"

	applyGesture "github.com/m04kA/SMC-CalendarService/internal/usecase/apply_gesture"
)

type ApplyGestureUseCase interface {
	Execute(ctx context.Context, req *applyGesture.Request) (*applyGesture.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
