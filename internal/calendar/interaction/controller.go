package interaction

import (
	"math"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar/timegrid"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Controller конечный автомат жестов календаря: клик-создание,
// выделение-создание, перенос и ресайз бронирований с привязкой к сетке
//
// Controller не хранит состояние жеста - оно передается явно через
// Reduce, единственную функцию переходов автомата. Все недопустимые
// жесты предотвращаются конструктивно (ограничением значений), поэтому
// Reduce не возвращает ошибок
type Controller struct {
	grid     timegrid.Grid
	days     []time.Time
	editable bool

	defaultDurationMin int
	minDurationMin     int
	resizeMarginPx     float64
	clickTolerancePx   float64
}

// NewController создает автомат для одного представления календаря
// days - видимые дневные колонки по порядку, editable - разрешены ли
// перенос и ресайз существующих бронирований
func NewController(grid timegrid.Grid, days []time.Time, editable bool) *Controller {
	return &Controller{
		grid:               grid,
		days:               days,
		editable:           editable,
		defaultDurationMin: domain.DefaultCreateDurationMinutes,
		minDurationMin:     domain.MinCreateDurationMinutes,
		resizeMarginPx:     domain.ResizeMarginPx,
		clickTolerancePx:   domain.ClickTolerancePx,
	}
}

// Reduce применяет событие указателя к состоянию и возвращает новое
// состояние плюс эффект для вызывающего слоя
func (c *Controller) Reduce(s State, ev Event) (State, Effect) {
	switch e := ev.(type) {
	case PointerDown:
		return c.reduceDown(s, e)
	case PointerMove:
		return c.reduceMove(s, e)
	case PointerUp:
		return c.reduceUp(s, e)
	case Click:
		return c.reduceClick(s, e)
	default:
		return s, noEffect()
	}
}

func (c *Controller) reduceDown(s State, e PointerDown) (State, Effect) {
	if s.Phase != PhaseIdle {
		// Повторный down во время жеста игнорируется
		return s, noEffect()
	}

	day := c.clampDayIndex(e.DayIndex)

	if e.Target == nil {
		// Пустая область: начинаем выделение под создание
		// Quick-create против drag-create решается на отпускании
		start := c.grid.TimeAtPixel(c.days[day], e.Y)
		return State{
			Phase: PhaseCreating,
			Drag: &DragState{
				Mode:            ModeCreate,
				OriginDayIndex:  day,
				OriginX:         e.X,
				OriginY:         e.Y,
				PreviewDayIndex: day,
				PreviewStart:    start,
				PreviewEnd:      start,
			},
		}, noEffect()
	}

	if !c.editable {
		// Без права редактирования нажатие на бронирование никогда не
		// начинает перетаскивание; детали откроет последующий click
		return s, noEffect()
	}

	mode := c.hitMode(e.Y, e.Target)
	return State{
		Phase: PhaseDragging,
		Drag: &DragState{
			Mode:            mode,
			BookingID:       e.Target.BookingID,
			OriginDayIndex:  day,
			OriginX:         e.X,
			OriginY:         e.Y,
			OriginStart:     e.Target.StartAt,
			OriginEnd:       e.Target.EndAt,
			PreviewDayIndex: day,
			PreviewStart:    e.Target.StartAt,
			PreviewEnd:      e.Target.EndAt,
		},
	}, noEffect()
}

func (c *Controller) reduceMove(s State, e PointerMove) (State, Effect) {
	if s.Phase == PhaseIdle || s.Drag == nil {
		return s, noEffect()
	}

	drag := *s.Drag
	if !drag.Moved && c.travel(drag, e.X, e.Y) > c.clickTolerancePx {
		drag.Moved = true
	}

	switch drag.Mode {
	case ModeCreate:
		c.previewCreate(&drag, e.Y)
	case ModeMove:
		c.previewMove(&drag, e.DayIndex, e.Y)
	case ModeResizeStart:
		c.previewResizeStart(&drag, e.Y)
	case ModeResizeEnd:
		c.previewResizeEnd(&drag, e.Y)
	}

	s.Drag = &drag
	return s, noEffect()
}

func (c *Controller) reduceUp(s State, e PointerUp) (State, Effect) {
	if s.Phase == PhaseIdle || s.Drag == nil {
		return s, noEffect()
	}

	drag := *s.Drag
	if !drag.Moved && c.travel(drag, e.X, e.Y) > c.clickTolerancePx {
		drag.Moved = true
	}

	next := Idle()
	// Любое реальное перетаскивание гасит синтетический click после отпускания
	next.SuppressNextClick = drag.Moved

	if !drag.Moved {
		// Жест оказался кликом: quick-create выполнит обработчик click,
		// нажатие на бронирование деталей тоже дождется click
		return next, noEffect()
	}

	switch drag.Mode {
	case ModeCreate:
		c.previewCreate(&drag, e.Y)
		return next, Effect{
			Kind:     EffectOpenCreateIntent,
			Mode:     ModeCreate,
			DayIndex: drag.PreviewDayIndex,
			Start:    drag.PreviewStart,
			End:      drag.PreviewEnd,
		}

	case ModeMove:
		c.previewMove(&drag, e.DayIndex, e.Y)
	case ModeResizeStart:
		c.previewResizeStart(&drag, e.Y)
	case ModeResizeEnd:
		c.previewResizeEnd(&drag, e.Y)
	}

	// Отпускание всегда коммитит последнее превью, если оно отличается
	// от исходного диапазона; пути отмены жеста нет
	if drag.PreviewStart.Equal(drag.OriginStart) && drag.PreviewEnd.Equal(drag.OriginEnd) {
		return next, noEffect()
	}

	return next, Effect{
		Kind:      EffectCommitUpdate,
		Mode:      drag.Mode,
		BookingID: drag.BookingID,
		DayIndex:  drag.PreviewDayIndex,
		Start:     drag.PreviewStart,
		End:       drag.PreviewEnd,
	}
}

func (c *Controller) reduceClick(s State, e Click) (State, Effect) {
	if s.SuppressNextClick {
		s.SuppressNextClick = false
		return s, noEffect()
	}

	if e.Target != nil {
		return s, Effect{Kind: EffectOpenDetail, BookingID: e.Target.BookingID}
	}

	// Quick-create: привязанное время клика плюс длительность по умолчанию
	day := c.clampDayIndex(e.DayIndex)
	start := c.grid.TimeAtPixel(c.days[day], e.Y)
	return s, Effect{
		Kind:     EffectOpenCreateIntent,
		Mode:     ModeCreate,
		DayIndex: day,
		Start:    start,
		End:      start.Add(time.Duration(c.defaultDurationMin) * time.Minute),
	}
}

// previewCreate обновляет выделение создания: привязанный минимум из
// точек нажатия и текущей позиции становится началом, конец добирается
// до минимальной длительности
func (c *Controller) previewCreate(drag *DragState, y float64) {
	day := c.days[drag.OriginDayIndex]
	lowY := math.Min(drag.OriginY, y)
	highY := math.Max(drag.OriginY, y)

	start := c.grid.TimeAtPixel(day, lowY)
	end := c.grid.TimeAtPixel(day, highY)

	if minEnd := start.Add(time.Duration(c.minDurationMin) * time.Minute); end.Before(minEnd) {
		end = minEnd
	}

	drag.PreviewStart = start
	drag.PreviewEnd = end
}

// previewMove сдвигает начало бронирования вслед за указателем:
// длительность фиксирована, колонка дня читается из-под текущей
// x-позиции (перенос может пересекать дни)
func (c *Controller) previewMove(drag *DragState, dayIndex int, y float64) {
	day := c.clampDayIndex(dayIndex)
	duration := drag.OriginEnd.Sub(drag.OriginStart)

	start := c.grid.TimeAtPixel(c.days[day], y)

	drag.PreviewDayIndex = day
	drag.PreviewStart = start
	drag.PreviewEnd = start.Add(duration)
}

// previewResizeStart двигает только верхний край: он ограничен так,
// чтобы никогда не пересечь нижний край минус шаг сетки
func (c *Controller) previewResizeStart(drag *DragState, y float64) {
	day := c.days[drag.OriginDayIndex]
	start := c.grid.TimeAtPixel(day, y)

	limit := drag.OriginEnd.Add(-time.Duration(c.grid.SnapStepMinutes) * time.Minute)
	if start.After(limit) {
		start = limit
	}

	drag.PreviewStart = start
	drag.PreviewEnd = drag.OriginEnd
}

// previewResizeEnd двигает только нижний край, симметрично previewResizeStart
func (c *Controller) previewResizeEnd(drag *DragState, y float64) {
	day := c.days[drag.OriginDayIndex]
	end := c.grid.TimeAtPixel(day, y)

	limit := drag.OriginStart.Add(time.Duration(c.grid.SnapStepMinutes) * time.Minute)
	if end.Before(limit) {
		end = limit
	}

	drag.PreviewStart = drag.OriginStart
	drag.PreviewEnd = end
}

// hitMode определяет режим по точке нажатия: зона ResizeMarginPx у
// верхнего/нижнего края бокса начинает ресайз, остальное - перенос
func (c *Controller) hitMode(y float64, target *HitTarget) DragMode {
	if y-target.TopPx <= c.resizeMarginPx {
		return ModeResizeStart
	}
	if target.TopPx+target.HeightPx-y <= c.resizeMarginPx {
		return ModeResizeEnd
	}
	return ModeMove
}

func (c *Controller) travel(drag DragState, x, y float64) float64 {
	return math.Hypot(x-drag.OriginX, y-drag.OriginY)
}

func (c *Controller) clampDayIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(c.days) {
		return len(c.days) - 1
	}
	return i
}
