package apply_gesture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/calendar/interaction"
	"github.com/m04kA/SMC-CalendarService/internal/calendar/timegrid"
	workshopClient "github.com/m04kA/SMC-CalendarService/internal/integrations/workshopservice"
)

// UseCase use case разбора жеста указателя: прогоняет трассу событий
// через конечный автомат взаимодействия и исполняет итоговый эффект
// (черновик создания, открытие деталей или коммит нового времени через
// систему записи)
type UseCase struct {
	client   WorkshopServiceClient
	grid     timegrid.Grid
	location *time.Location
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	client WorkshopServiceClient,
	grid timegrid.Grid,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:   client,
		grid:     grid,
		location: location,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case разбора жеста
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyGesture: workshop=%d, events=%d, editable=%v, target=%v",
		req.WorkshopID, len(req.Events), req.Editable, req.Target != nil)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyGesture: validation failed: %v", err)
		return nil, err
	}

	// 2. Автомат жестов для видимого диапазона дней
	days := uc.daysRange(req.DateFrom, req.DateTo)
	controller := interaction.NewController(uc.grid, days, req.Editable)

	// 3. Прогон трассы: состояние явное, эффект несет последний переход
	state := interaction.Idle()
	final := interaction.Effect{Kind: interaction.EffectNone}

	for _, ev := range req.Events {
		var effect interaction.Effect
		state, effect = controller.Reduce(state, uc.toEvent(ev, req.Target))
		if effect.Kind != interaction.EffectNone {
			final = effect
		}
	}

	// 4. Исполнение итогового эффекта
	switch final.Kind {
	case interaction.EffectNone:
		return &Response{Outcome: OutcomeNone}, nil

	case interaction.EffectOpenDetail:
		return &Response{Outcome: OutcomeOpenDetail, BookingID: final.BookingID}, nil

	case interaction.EffectOpenCreateIntent:
		uc.logger.Info("ApplyGesture: create intent day=%d, %s..%s",
			final.DayIndex, final.Start.Format(time.RFC3339), final.End.Format(time.RFC3339))
		return &Response{
			Outcome: OutcomeCreateIntent,
			Draft: &Draft{
				DayIndex:   final.DayIndex,
				StartAt:    final.Start,
				EndAt:      final.End,
				ChainToken: uuid.NewString(),
			},
		}, nil

	case interaction.EffectCommitUpdate:
		return uc.commit(ctx, final)

	default:
		return nil, fmt.Errorf("%w: unexpected effect %q", ErrInternal, final.Kind)
	}
}

// commit отправляет новое время бронирования в систему записи
func (uc *UseCase) commit(ctx context.Context, effect interaction.Effect) (*Response, error) {
	updated, err := uc.client.UpdateBookingTime(ctx, effect.BookingID, effect.Start, effect.End)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.IncGestureCommit(string(effect.Mode), "error")
		}

		switch {
		case errors.Is(err, workshopClient.ErrBookingNotFound):
			uc.logger.Warn("ApplyGesture: booking id=%d not found on commit", effect.BookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, workshopClient.ErrBookingConflict):
			// Превью отбрасывается: авторитетным остается серверное время
			uc.logger.Warn("ApplyGesture: commit rejected for booking id=%d: %v", effect.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpdateConflict, err)
		default:
			uc.logger.Error("ApplyGesture: failed to commit booking id=%d: %v", effect.BookingID, err)
			return nil, fmt.Errorf("%w: commit failed: %v", ErrInternal, err)
		}
	}

	if uc.metrics != nil {
		uc.metrics.IncGestureCommit(string(effect.Mode), "ok")
	}

	uc.logger.Info("ApplyGesture: booking id=%d committed to %s..%s (mode=%s)",
		effect.BookingID, effect.Start.Format(time.RFC3339), effect.End.Format(time.RFC3339), effect.Mode)

	return &Response{
		Outcome:   OutcomeUpdated,
		BookingID: updated.ID,
		Updated:   updated,
	}, nil
}

// toEvent переводит wire-событие трассы в событие автомата
func (uc *UseCase) toEvent(ev PointerEvent, target *Target) interaction.Event {
	var hit *interaction.HitTarget
	if target != nil {
		hit = &interaction.HitTarget{
			BookingID: target.BookingID,
			StartAt:   target.StartAt,
			EndAt:     target.EndAt,
			TopPx:     target.TopPx,
			HeightPx:  target.HeightPx,
		}
	}

	switch ev.Type {
	case EventDown:
		return interaction.PointerDown{DayIndex: ev.DayIndex, X: ev.X, Y: ev.Y, Target: hit}
	case EventMove:
		return interaction.PointerMove{DayIndex: ev.DayIndex, X: ev.X, Y: ev.Y}
	case EventUp:
		return interaction.PointerUp{DayIndex: ev.DayIndex, X: ev.X, Y: ev.Y}
	default:
		return interaction.Click{DayIndex: ev.DayIndex, Y: ev.Y, Target: hit}
	}
}

// daysRange возвращает дневные колонки диапазона [from, to] в тайм-зоне
// календаря
func (uc *UseCase) daysRange(from, to time.Time) []time.Time {
	fromLocal := from.In(uc.location)
	start := time.Date(fromLocal.Year(), fromLocal.Month(), fromLocal.Day(), 0, 0, 0, 0, uc.location)

	toLocal := to.In(uc.location)
	end := time.Date(toLocal.Year(), toLocal.Month(), toLocal.Day(), 0, 0, 0, 0, uc.location)

	days := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
