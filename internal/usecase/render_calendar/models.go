package render_calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar/availability"
	"github.com/m04kA/SMC-CalendarService/internal/calendar/layout"
)

// ResourceKind вид ресурса, для которого строится календарь
type ResourceKind string

const (
	KindBay      ResourceKind = "bay"
	KindEmployee ResourceKind = "employee"
)

// Request модель запроса на построение render-модели календаря
type Request struct {
	Kind             ResourceKind
	WorkshopID       int64
	ResourceID       int64 // ID бокса или сотрудника в зависимости от Kind
	DateFrom         time.Time
	DateTo           time.Time // включительно (последний видимый день)
	IncludeCancelled bool
}

// RenderModel готовая к отрисовке модель календаря: дневные колонки,
// пиксельные боксы цепочек и фоновые слои доступности
//
// Модель строится заново на каждый успешный проход и никогда не
// мутируется после возврата
type RenderModel struct {
	Kind       ResourceKind
	WorkshopID int64
	ResourceID int64

	Days     []time.Time
	Chains   []layout.ChainBox
	Overlays []availability.Block

	GeneratedAt time.Time

	// Stale выставляется, когда свежее окно получить не удалось и
	// возвращена последняя удачная модель; ErrorBanner несёт текст
	// для закрываемого баннера ошибки
	Stale       bool
	ErrorBanner string
}
