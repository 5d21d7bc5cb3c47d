package render_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar/availability"
	"github.com/m04kA/SMC-CalendarService/internal/calendar/chain"
	"github.com/m04kA/SMC-CalendarService/internal/calendar/layout"
	"github.com/m04kA/SMC-CalendarService/internal/calendar/timegrid"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case построения render-модели календаря: выборка окна из
// системы записи, нормализация, группировка в цепочки, раскладка и
// фоновые слои доступности
//
// Данные текут в одну сторону на каждый проход:
// клиент -> сырые записи -> цепочки -> боксы/оверлеи -> RenderModel
type UseCase struct {
	client       WorkshopServiceClient
	grid         timegrid.Grid
	location     *time.Location
	cache        *viewCache
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
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
		client:       client,
		grid:         grid,
		location:     location,
		cache:        newViewCache(),
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*RenderModel, error) {
	uc.logger.Info("RenderCalendar: kind=%s, workshop=%d, resource=%d, range=%s..%s",
		req.Kind, req.WorkshopID, req.ResourceID,
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RenderCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Регистрируем выборку: применится только самая новая по этому ключу
	key := viewKey(req)
	seq := uc.cache.begin(key)

	// 3. Дневные колонки в тайм-зоне календаря
	days := uc.daysRange(req.DateFrom, req.DateTo)

	// 4. Выборка окна бронирований и источников оверлеев
	bookings, overlays, err := uc.fetchWindow(ctx, req, days)
	if err != nil {
		return uc.degrade(key, req, err)
	}

	// 5. Нормализация в полностью заполненную view-модель
	normalized := normalizeBookings(bookings, req.IncludeCancelled)

	// 6. Группировка в цепочки и раскладка
	layoutStarted := uc.timeProvider.Now()
	chains := chain.Group(normalized)
	engine := layout.NewEngine(uc.grid)
	boxes := engine.Layout(chains, days)

	if uc.metrics != nil {
		uc.metrics.ObserveLayoutPass(string(req.Kind), uc.timeProvider.Now().Sub(layoutStarted))
	}

	model := &RenderModel{
		Kind:        req.Kind,
		WorkshopID:  req.WorkshopID,
		ResourceID:  req.ResourceID,
		Days:        days,
		Chains:      boxes,
		Overlays:    overlays,
		GeneratedAt: uc.timeProvider.Now(),
	}

	// 7. Фиксация в кэше представления; устаревшая выборка отбрасывается
	if !uc.cache.commit(key, seq, model) {
		uc.logger.Warn("RenderCalendar: fetch seq=%d superseded for key=%s, serving newest", seq, key)
		if uc.metrics != nil {
			uc.metrics.IncRenderCacheEvent("discarded_fetch")
		}
		if newest, ok := uc.cache.lastGood(key); ok {
			return newest, nil
		}
		// Новейшая выборка еще в полете - эта модель корректна, отдаем её
		return model, nil
	}

	uc.logger.Info("RenderCalendar: rendered %d chain boxes, %d overlay blocks for key=%s",
		len(boxes), len(overlays), key)
	return model, nil
}

// fetchWindow получает бронирования окна и источники фоновых слоев
// для вида ресурса
func (uc *UseCase) fetchWindow(ctx context.Context, req *Request, days []time.Time) ([]*domain.Booking, []availability.Block, error) {
	windowStart, _ := uc.grid.DayWindow(days[0])
	_, windowEnd := uc.grid.DayWindow(days[len(days)-1])

	filter := domain.CalendarWindowFilter{
		WorkshopID:       req.WorkshopID,
		DateFrom:         windowStart,
		DateTo:           windowEnd,
		IncludeCancelled: req.IncludeCancelled,
	}

	switch req.Kind {
	case KindBay:
		filter.BayID = &req.ResourceID
	case KindEmployee:
		filter.AssignedUserID = &req.ResourceID
	}

	bookings, err := uc.client.ListBookings(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bookings window: %v", ErrFetchFailed, err)
	}

	builder := availability.NewBuilder(uc.grid)
	overlays := make([]availability.Block, 0)

	switch req.Kind {
	case KindEmployee:
		rules, err := uc.client.ListWorkingHours(ctx, req.ResourceID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: working hours: %v", ErrFetchFailed, err)
		}
		timeOff, err := uc.client.ListTimeOff(ctx, req.ResourceID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: time off: %v", ErrFetchFailed, err)
		}
		overlays = append(overlays, builder.WorkingHoursBlocks(rules, days)...)
		overlays = append(overlays, builder.TimeOffBlocks(timeOff, days)...)

	case KindBay:
		closures, err := uc.client.ListBayClosures(ctx, req.ResourceID, windowStart, windowEnd)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bay closures: %v", ErrFetchFailed, err)
		}
		overlays = append(overlays, builder.ClosureBlocks(closures, days)...)
	}

	return bookings, overlays, nil
}

// degrade обрабатывает неудачную выборку: последняя удачная модель
// с пометкой Stale и баннером ошибки, если она есть, иначе ошибка
func (uc *UseCase) degrade(key string, req *Request, fetchErr error) (*RenderModel, error) {
	last, ok := uc.cache.lastGood(key)
	if !ok {
		uc.logger.Error("RenderCalendar: fetch failed with no cached model for key=%s: %v", key, fetchErr)
		return nil, fetchErr
	}

	uc.logger.Warn("RenderCalendar: fetch failed, serving stale model for key=%s: %v", key, fetchErr)
	if uc.metrics != nil {
		uc.metrics.IncRenderCacheEvent("stale_served")
	}

	stale := *last
	stale.Stale = true
	stale.ErrorBanner = "Календарь не обновился: показаны последние загруженные данные"
	return &stale, nil
}

// daysRange возвращает дневные колонки диапазона [from, to] как полуночи
// в тайм-зоне календаря
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
