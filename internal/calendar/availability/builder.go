package availability

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar/timegrid"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// BlockKind вид фонового блока доступности
type BlockKind string

const (
	KindWorkingHours BlockKind = "working_hours"
	KindTimeOff      BlockKind = "time_off"
	KindBayClosure   BlockKind = "bay_closure"
)

// Block один фоновый блок в дневной колонке. Блоки - чисто аддитивные
// слои подложки: они не сливаются ни между собой, ни с бронированиями
type Block struct {
	Kind     BlockKind
	DayIndex int
	StartAt  time.Time
	EndAt    time.Time
	TopPx    float64
	HeightPx float64

	// Заполняется только для Kind=KindTimeOff
	TimeOffType domain.TimeOffType
	Reason      *string
}

// Builder строит фоновые блоки доступности теми же примитивами клиппинга
// и позиционирования, что и раскладка бронирований
type Builder struct {
	grid timegrid.Grid
}

// NewBuilder создает билдер поверх временной сетки
func NewBuilder(grid timegrid.Grid) *Builder {
	return &Builder{grid: grid}
}

// WorkingHoursBlocks превращает повторяющиеся правила рабочих часов в
// клиппированные блоки: для каждого дня отбираются правила с совпадающим
// днем недели, чьи границы действия (если заданы) включают эту дату
func (b *Builder) WorkingHoursBlocks(rules []domain.WorkingHoursRule, days []time.Time) []Block {
	blocks := make([]Block, 0)

	for dayIndex, day := range days {
		cellStart, cellEnd := b.grid.DayWindow(day)

		for _, rule := range rules {
			if !rule.AppliesOn(day) {
				continue
			}

			ruleStart, err := rule.StartTime.OnDate(day)
			if err != nil {
				continue
			}
			ruleEnd, err := rule.EndTime.OnDate(day)
			if err != nil {
				continue
			}

			block, ok := b.clipToBlock(KindWorkingHours, dayIndex, day, ruleStart, ruleEnd, cellStart, cellEnd)
			if !ok {
				continue
			}
			blocks = append(blocks, block)
		}
	}

	return blocks
}

// TimeOffBlocks превращает интервалы отсутствия в клиппированные блоки
// Интервалы несут абсолютные моменты - сопоставление по дню недели не нужно
func (b *Builder) TimeOffBlocks(intervals []domain.TimeOffInterval, days []time.Time) []Block {
	blocks := make([]Block, 0)

	for dayIndex, day := range days {
		cellStart, cellEnd := b.grid.DayWindow(day)

		for _, iv := range intervals {
			block, ok := b.clipToBlock(KindTimeOff, dayIndex, day, iv.StartAt, iv.EndAt, cellStart, cellEnd)
			if !ok {
				continue
			}
			block.TimeOffType = iv.Type
			block.Reason = iv.Reason
			blocks = append(blocks, block)
		}
	}

	return blocks
}

// ClosureBlocks превращает закрытия боксов в клиппированные блоки
// (подложка календаря бокса, та же механика, что и отсутствия)
func (b *Builder) ClosureBlocks(closures []domain.BayClosure, days []time.Time) []Block {
	blocks := make([]Block, 0)

	for dayIndex, day := range days {
		cellStart, cellEnd := b.grid.DayWindow(day)

		for _, cl := range closures {
			block, ok := b.clipToBlock(KindBayClosure, dayIndex, day, cl.StartAt, cl.EndAt, cellStart, cellEnd)
			if !ok {
				continue
			}
			block.Reason = cl.Reason
			blocks = append(blocks, block)
		}
	}

	return blocks
}

func (b *Builder) clipToBlock(kind BlockKind, dayIndex int, day, start, end, cellStart, cellEnd time.Time) (Block, bool) {
	s, e, ok := timegrid.Clip(start, end, cellStart, cellEnd)
	if !ok {
		return Block{}, false
	}

	topMinutes := b.grid.MinutesSinceWindowStart(s, day)
	height := b.grid.TimeToPixel(int(e.Sub(s) / time.Minute))

	return Block{
		Kind:     kind,
		DayIndex: dayIndex,
		StartAt:  s,
		EndAt:    e,
		TopPx:    b.grid.TimeToPixel(topMinutes),
		HeightPx: timegrid.FloorHeight(height, domain.MinOverlayHeightPx),
	}, true
}
