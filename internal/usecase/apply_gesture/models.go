package apply_gesture

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Event types of a pointer trace
const (
	EventDown  = "down"
	EventMove  = "move"
	EventUp    = "up"
	EventClick = "click"
)

// PointerEvent одно событие указателя в трассе жеста
type PointerEvent struct {
	Type     string
	DayIndex int
	X        float64
	Y        float64
}

// Target бронирование под указателем в момент начала жеста - в тех же
// координатах, в которых его отрисовала render-модель
type Target struct {
	BookingID int64
	StartAt   time.Time
	EndAt     time.Time
	TopPx     float64
	HeightPx  float64
}

// Request модель запроса на разбор жеста
type Request struct {
	WorkshopID int64
	DateFrom   time.Time
	DateTo     time.Time

	// Editable включает путь перенос/ресайз; без него нажатие на
	// бронирование дает только открытие деталей
	Editable bool

	Target *Target
	Events []PointerEvent
}

// Outcome итог разбора жеста
type Outcome string

const (
	OutcomeNone         Outcome = "none"
	OutcomeOpenDetail   Outcome = "open_detail"
	OutcomeCreateIntent Outcome = "create_intent"
	OutcomeUpdated      Outcome = "updated"
)

// Draft черновой диапазон для формы создания бронирования
// ChainToken - свежий токен, которым форма свяжет части, если работа
// будет разбита на несколько бронирований
type Draft struct {
	DayIndex   int
	StartAt    time.Time
	EndAt      time.Time
	ChainToken string
}

// Response модель ответа разбора жеста
type Response struct {
	Outcome   Outcome
	BookingID int64            // для open_detail и updated
	Draft     *Draft           // для create_intent
	Updated   *domain.Booking  // для updated: актуальное состояние с сервера
}
