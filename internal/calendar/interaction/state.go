package interaction

import "time"

// DragMode режим активного жеста
type DragMode string

const (
	ModeMove        DragMode = "move"
	ModeResizeStart DragMode = "resize-start"
	ModeResizeEnd   DragMode = "resize-end"
	ModeCreate      DragMode = "create"
)

// Phase фаза конечного автомата жестов
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseCreating Phase = "creating"
	PhaseDragging Phase = "dragging"
)

// DragState состояние одной жестовой сессии: создается на pointer-down,
// обновляется на pointer-move, потребляется на pointer-up. Никогда не
// переживает один жест
type DragState struct {
	Mode      DragMode
	BookingID int64 // 0 для create

	OriginDayIndex int
	OriginX        float64
	OriginY        float64
	OriginStart    time.Time
	OriginEnd      time.Time

	PreviewDayIndex int
	PreviewStart    time.Time
	PreviewEnd      time.Time

	// Moved выставляется, когда указатель ушел дальше ClickTolerancePx
	// от точки нажатия: отличает перетаскивание от клика
	Moved bool
}

// State явное состояние автомата вместо разрозненных boolean-флагов:
// одна фаза, одно состояние перетаскивания, один флаг подавления
// синтетического click после отпускания перетаскивания
type State struct {
	Phase Phase
	Drag  *DragState

	// SuppressNextClick гасит click, который браузер синтезирует сразу
	// после отпускания перетаскивания, чтобы один жест не породил
	// одновременно commit и дублирующий quick-create
	SuppressNextClick bool
}

// Idle возвращает начальное состояние автомата
func Idle() State {
	return State{Phase: PhaseIdle}
}

// HitTarget описывает бронирование под указателем в момент pointer-down
// Координаты бокса нужны для попадания в зону ресайза у краёв
type HitTarget struct {
	BookingID int64
	StartAt   time.Time
	EndAt     time.Time
	TopPx     float64
	HeightPx  float64
}

// Event событие указателя. Колонку дня под текущей x-координатой
// вычисляет вызывающая сторона и передает в DayIndex
type Event interface{ isEvent() }

// PointerDown нажатие указателя
type PointerDown struct {
	DayIndex int
	X        float64
	Y        float64
	Target   *HitTarget // nil = пустая область сетки
}

// PointerMove перемещение указателя при зажатой кнопке
type PointerMove struct {
	DayIndex int
	X        float64
	Y        float64
}

// PointerUp отпускание указателя
type PointerUp struct {
	DayIndex int
	X        float64
	Y        float64
}

// Click синтетический click, приходящий после pointer-up
type Click struct {
	DayIndex int
	Y        float64
	Target   *HitTarget
}

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (PointerUp) isEvent()   {}
func (Click) isEvent()       {}

// EffectKind вид побочного эффекта, который должен выполнить вызывающий слой
type EffectKind string

const (
	EffectNone             EffectKind = "none"
	EffectOpenDetail       EffectKind = "open_detail"
	EffectOpenCreateIntent EffectKind = "open_create_intent"
	EffectCommitUpdate     EffectKind = "commit_update"
)

// Effect результат перехода автомата
type Effect struct {
	Kind      EffectKind
	Mode      DragMode // для commit_update: какой жест завершился
	BookingID int64
	DayIndex  int
	Start     time.Time
	End       time.Time
}

func noEffect() Effect {
	return Effect{Kind: EffectNone}
}
