package layout

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// InnerSegment один непрерывный кусок цепочки внутри внешнего бокса
// Координаты заданы относительно верха внешнего бокса
type InnerSegment struct {
	BookingID int64
	StartAt   time.Time // после клиппинга к окну дня
	EndAt     time.Time
	TopPx     float64
	HeightPx  float64
}

// ChainBox внешний бокс цепочки в одной дневной колонке: несёт заголовок,
// статус и цену всей цепочки и является общей кликабельной целью
//
// ChainBox - эфемерный объект одного прохода раскладки: создается заново
// на каждый рендер, никогда не сохраняется и не мутируется
type ChainBox struct {
	ChainKey   string
	DayIndex   int
	MasterID   int64
	Title      string
	Status     domain.BookingStatus
	Fragmented bool

	// Ценовые поля master-части (nil, если цена не задана)
	FinalPriceOre *int64
	PriceNote     *string

	// Внешние границы бокса по времени (после клиппинга)
	StartAt time.Time
	EndAt   time.Time

	TopPx    float64
	HeightPx float64

	// Горизонтальное смещение каскада при пересечении цепочек в колонке
	OffsetPx float64

	Segments []InnerSegment
}
