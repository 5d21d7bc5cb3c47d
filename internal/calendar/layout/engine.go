package layout

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar/timegrid"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Engine раскладывает цепочки бронирований по дневным колонкам в
// пиксельные боксы. Чистая функция над подготовленными входами:
// никакого состояния между проходами
type Engine struct {
	grid timegrid.Grid
}

// NewEngine создает движок раскладки поверх временной сетки
func NewEngine(grid timegrid.Grid) *Engine {
	return &Engine{grid: grid}
}

// Layout вычисляет боксы всех цепочек для каждой дневной колонки
//
// Для каждой пары (день, цепочка):
//  1. Каждая часть клиппируется к видимому окну дня; пустые отбрасываются
//  2. Если видимых частей нет - цепочка в этот день невидима
//  3. Внешний бокс = [начало первой видимой части, конец последней]
//  4. Внутренние сегменты позиционируются относительно верха внешнего
//     бокса, каждый со своим минимальным ростом - так между частями
//     фрагментированного бронирования остается видимый разрыв при одном
//     общем заголовке
//  5. Цепочки, пересекающиеся по времени в одной колонке, получают
//     фиксированное горизонтальное смещение каскада (без упаковки в
//     минимальные дорожки - осознанно сохраненное поведение)
//
// Колонки независимы: удаление дня из входа не меняет боксы других дней
func (e *Engine) Layout(chains []domain.Chain, days []time.Time) []ChainBox {
	boxes := make([]ChainBox, 0)

	for dayIndex, day := range days {
		cellStart, cellEnd := e.grid.DayWindow(day)
		placed := make([]ChainBox, 0)

		for _, c := range chains {
			box, ok := e.layoutChain(c, dayIndex, day, cellStart, cellEnd)
			if !ok {
				continue
			}

			box.OffsetPx = float64(countOverlapping(placed, box)) * domain.StackOffsetPx
			placed = append(placed, box)
		}

		boxes = append(boxes, placed...)
	}

	return boxes
}

// layoutChain строит бокс одной цепочки в одной дневной колонке
// ok=false, если ни одна часть не видима в этот день
func (e *Engine) layoutChain(c domain.Chain, dayIndex int, day, cellStart, cellEnd time.Time) (ChainBox, bool) {
	type clippedPart struct {
		booking *domain.Booking
		start   time.Time
		end     time.Time
	}

	visible := make([]clippedPart, 0, len(c.Parts))
	for _, p := range c.Parts {
		s, en, ok := timegrid.Clip(p.StartAt, p.EndAt, cellStart, cellEnd)
		if !ok {
			continue
		}
		visible = append(visible, clippedPart{booking: p, start: s, end: en})
	}

	if len(visible) == 0 {
		return ChainBox{}, false
	}

	// Части уже отсортированы по StartAt, клиппинг порядок не меняет
	outerStart := visible[0].start
	outerEnd := visible[len(visible)-1].end

	topMinutes := e.grid.MinutesSinceWindowStart(outerStart, day)
	outerHeight := e.grid.TimeToPixel(int(outerEnd.Sub(outerStart) / time.Minute))

	box := ChainBox{
		ChainKey:      c.Key,
		DayIndex:      dayIndex,
		MasterID:      c.Master.ID,
		Title:         c.Master.Title,
		Status:        c.Master.Status,
		Fragmented:    c.IsFragmented(),
		FinalPriceOre: c.Master.FinalPriceOre,
		PriceNote:     c.Master.PriceNote,
		StartAt:       outerStart,
		EndAt:         outerEnd,
		TopPx:         e.grid.TimeToPixel(topMinutes),
		HeightPx:      timegrid.FloorHeight(outerHeight, domain.MinBookingHeightPx),
		Segments:      make([]InnerSegment, 0, len(visible)),
	}

	for _, part := range visible {
		relTop := e.grid.TimeToPixel(int(part.start.Sub(outerStart) / time.Minute))
		height := e.grid.TimeToPixel(int(part.end.Sub(part.start) / time.Minute))

		box.Segments = append(box.Segments, InnerSegment{
			BookingID: part.booking.ID,
			StartAt:   part.start,
			EndAt:     part.end,
			TopPx:     relTop,
			HeightPx:  timegrid.FloorHeight(height, domain.MinSegmentHeightPx),
		})
	}

	return box, true
}

// countOverlapping считает уже размещенные в колонке боксы, пересекающиеся
// с box по времени (полуоткрытые интервалы)
func countOverlapping(placed []ChainBox, box ChainBox) int {
	count := 0
	for _, other := range placed {
		if other.StartAt.Before(box.EndAt) && other.EndAt.After(box.StartAt) {
			count++
		}
	}
	return count
}
