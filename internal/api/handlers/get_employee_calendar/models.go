package get_employee_calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	renderCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/render_calendar"
)

// CalendarResponse HTTP response model календаря сотрудника
// Помимо боксов цепочек несёт фоновые слои рабочих часов и отсутствий
type CalendarResponse struct {
	Kind        string         `json:"kind"`
	WorkshopID  int64          `json:"workshopId"`
	ResourceID  int64          `json:"resourceId"`
	Days        []string       `json:"days"`
	Chains      []ChainBox     `json:"chains"`
	Overlays    []OverlayBlock `json:"overlays"`
	GeneratedAt string         `json:"generatedAt"`
	Stale       bool           `json:"stale"`
	ErrorBanner string         `json:"errorBanner,omitempty"`
}

// ChainBox внешний бокс цепочки в дневной колонке
type ChainBox struct {
	ChainKey      string         `json:"chainKey"`
	DayIndex      int            `json:"dayIndex"`
	MasterID      int64          `json:"masterId"`
	Title         string         `json:"title"`
	Status        string         `json:"status"`
	Fragmented    bool           `json:"fragmented"`
	FinalPriceOre *int64         `json:"finalPriceOre,omitempty"`
	PriceNote     *string        `json:"priceNote,omitempty"`
	StartAt       string         `json:"startAt"`
	EndAt         string         `json:"endAt"`
	TopPx         float64        `json:"topPx"`
	HeightPx      float64        `json:"heightPx"`
	OffsetPx      float64        `json:"offsetPx"`
	Segments      []InnerSegment `json:"segments"`
}

// InnerSegment внутренний сегмент бокса (координаты относительно его верха)
type InnerSegment struct {
	BookingID int64   `json:"bookingId"`
	StartAt   string  `json:"startAt"`
	EndAt     string  `json:"endAt"`
	TopPx     float64 `json:"topPx"`
	HeightPx  float64 `json:"heightPx"`
}

// OverlayBlock фоновый блок (рабочие часы или отсутствие)
type OverlayBlock struct {
	Kind        string  `json:"kind"`
	DayIndex    int     `json:"dayIndex"`
	StartAt     string  `json:"startAt"`
	EndAt       string  `json:"endAt"`
	TopPx       float64 `json:"topPx"`
	HeightPx    float64 `json:"heightPx"`
	TimeOffType string  `json:"timeOffType,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

// FromRenderModel конвертирует render-модель usecase в HTTP response
func FromRenderModel(model *renderCalendar.RenderModel) *CalendarResponse {
	days := make([]string, len(model.Days))
	for i, d := range model.Days {
		days[i] = d.Format(domain.DateFormat)
	}

	chains := make([]ChainBox, len(model.Chains))
	for i, box := range model.Chains {
		segments := make([]InnerSegment, len(box.Segments))
		for j, seg := range box.Segments {
			segments[j] = InnerSegment{
				BookingID: seg.BookingID,
				StartAt:   seg.StartAt.Format(time.RFC3339),
				EndAt:     seg.EndAt.Format(time.RFC3339),
				TopPx:     seg.TopPx,
				HeightPx:  seg.HeightPx,
			}
		}

		chains[i] = ChainBox{
			ChainKey:      box.ChainKey,
			DayIndex:      box.DayIndex,
			MasterID:      box.MasterID,
			Title:         box.Title,
			Status:        string(box.Status),
			Fragmented:    box.Fragmented,
			FinalPriceOre: box.FinalPriceOre,
			PriceNote:     box.PriceNote,
			StartAt:       box.StartAt.Format(time.RFC3339),
			EndAt:         box.EndAt.Format(time.RFC3339),
			TopPx:         box.TopPx,
			HeightPx:      box.HeightPx,
			OffsetPx:      box.OffsetPx,
			Segments:      segments,
		}
	}

	overlays := make([]OverlayBlock, len(model.Overlays))
	for i, block := range model.Overlays {
		overlays[i] = OverlayBlock{
			Kind:        string(block.Kind),
			DayIndex:    block.DayIndex,
			StartAt:     block.StartAt.Format(time.RFC3339),
			EndAt:       block.EndAt.Format(time.RFC3339),
			TopPx:       block.TopPx,
			HeightPx:    block.HeightPx,
			TimeOffType: string(block.TimeOffType),
			Reason:      block.Reason,
		}
	}

	return &CalendarResponse{
		Kind:        string(model.Kind),
		WorkshopID:  model.WorkshopID,
		ResourceID:  model.ResourceID,
		Days:        days,
		Chains:      chains,
		Overlays:    overlays,
		GeneratedAt: model.GeneratedAt.Format(time.RFC3339),
		Stale:       model.Stale,
		ErrorBanner: model.ErrorBanner,
	}
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(workshopID, userID int64, fromStr, toStr string, includeCancelled bool) (*renderCalendar.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &renderCalendar.Request{
		Kind:             renderCalendar.KindEmployee,
		WorkshopID:       workshopID,
		ResourceID:       userID,
		DateFrom:         from,
		DateTo:           to,
		IncludeCancelled: includeCancelled,
	}, nil
}
