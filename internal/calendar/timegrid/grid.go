package timegrid

import (
	"fmt"
	"math"
	"time"
)

// Grid чистая математика временной сетки календаря: взаимное отображение
// моментов времени и пиксельных смещений внутри дневного рабочего окна
// [StartHour, EndHour), плюс примитивы округления и ограничения
//
// Grid - value type без состояния, безопасен для копирования
type Grid struct {
	StartHour       int
	EndHour         int // не включительно
	PixelsPerHour   float64
	SnapStepMinutes int
}

// New создает Grid с валидацией параметров
func New(startHour, endHour int, pixelsPerHour float64, snapStepMinutes int) (Grid, error) {
	if startHour < 0 || startHour > 23 {
		return Grid{}, fmt.Errorf("%w: startHour=%d", ErrInvalidWindow, startHour)
	}
	if endHour <= startHour || endHour > 24 {
		return Grid{}, fmt.Errorf("%w: endHour=%d must be in (startHour, 24]", ErrInvalidWindow, endHour)
	}
	if pixelsPerHour <= 0 {
		return Grid{}, fmt.Errorf("%w: pixelsPerHour=%v", ErrInvalidWindow, pixelsPerHour)
	}
	if snapStepMinutes <= 0 || 60%snapStepMinutes != 0 {
		return Grid{}, fmt.Errorf("%w: snapStepMinutes=%d must divide 60", ErrInvalidWindow, snapStepMinutes)
	}
	return Grid{
		StartHour:       startHour,
		EndHour:         endHour,
		PixelsPerHour:   pixelsPerHour,
		SnapStepMinutes: snapStepMinutes,
	}, nil
}

// TotalMinutes возвращает длину дневного окна в минутах
func (g Grid) TotalMinutes() int {
	return (g.EndHour - g.StartHour) * 60
}

// TotalHeightPx возвращает полную высоту дневной колонки в пикселях
func (g Grid) TotalHeightPx() float64 {
	return float64(g.EndHour-g.StartHour) * g.PixelsPerHour
}

// DayWindow возвращает видимое окно дня [day@StartHour, day@EndHour)
// Тайм-зона берётся из day
func (g Grid) DayWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), g.StartHour, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), g.EndHour, 0, 0, 0, day.Location())
	return start, end
}

// MinutesSinceWindowStart возвращает целые минуты от начала окна дня day
// до момента t. Может быть отрицательным или превышать TotalMinutes -
// для моментов вне окна; вызывающая сторона применяет Clip
func (g Grid) MinutesSinceWindowStart(t time.Time, day time.Time) int {
	windowStart, _ := g.DayWindow(day)
	return int(t.Sub(windowStart) / time.Minute)
}

// TimeToPixel переводит минуты от начала окна в пиксельное смещение
func (g Grid) TimeToPixel(minutes int) float64 {
	return float64(minutes) / 60.0 * g.PixelsPerHour
}

// PixelToMinutes обратное преобразование: пиксельное смещение в минуты
// от начала окна, округленные к ближайшему шагу сетки и ограниченные
// диапазоном [0, TotalMinutes]
func (g Grid) PixelToMinutes(px float64) int {
	raw := px / g.PixelsPerHour * 60.0
	return g.ClampMinutes(g.SnapMinutes(raw))
}

// SnapMinutes округляет минуты к ближайшему шагу сетки
func (g Grid) SnapMinutes(minutes float64) int {
	step := float64(g.SnapStepMinutes)
	return int(math.Round(minutes/step) * step)
}

// ClampMinutes ограничивает минуты диапазоном [0, TotalMinutes]
func (g Grid) ClampMinutes(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if total := g.TotalMinutes(); minutes > total {
		return total
	}
	return minutes
}

// TimeAtPixel возвращает момент времени, соответствующий пиксельному
// смещению px в колонке дня day (с округлением и ограничением окном)
func (g Grid) TimeAtPixel(day time.Time, px float64) time.Time {
	windowStart, _ := g.DayWindow(day)
	return windowStart.Add(time.Duration(g.PixelToMinutes(px)) * time.Minute)
}

// Clip возвращает видимую часть полуоткрытого интервала [s, e) внутри
// окна [cellStart, cellEnd). ok=false, если пересечение пусто
func Clip(s, e, cellStart, cellEnd time.Time) (time.Time, time.Time, bool) {
	if s.Before(cellStart) {
		s = cellStart
	}
	if e.After(cellEnd) {
		e = cellEnd
	}
	if !e.After(s) {
		return time.Time{}, time.Time{}, false
	}
	return s, e, true
}

// FloorHeight поднимает высоту блока до минимальной визуальной высоты
// Презентационный контракт: временная модель при этом не меняется
func FloorHeight(px, min float64) float64 {
	if px < min {
		return min
	}
	return px
}
